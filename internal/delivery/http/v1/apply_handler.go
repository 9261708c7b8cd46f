package v1

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"careers-api/internal/delivery/http/response"
	"careers-api/internal/domain"
	"careers-api/pkg/apperror"
	"careers-api/pkg/upload"
	"careers-api/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// maxRequestBytes caps the whole multipart body. It sits comfortably above
// the 5 MiB resume limit so an oversize resume still reaches the size gate
// and gets its specific message; only grossly oversized bodies die here.
const maxRequestBytes = 8 << 20

type ApplyHandler struct {
	applicationUC domain.ApplicationUsecase
	validate      *validator.Validate
}

// NewApplyHandler registers the public application intake route. The origin
// guard and rate limiter are scoped to this route only.
func NewApplyHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, validate *validator.Validate, policies ...gin.HandlerFunc) {
	handler := &ApplyHandler{
		applicationUC: applicationUC,
		validate:      validate,
	}

	chain := append(policies, handler.SubmitApplication)
	r.POST("/apply", chain...)
}

// applyState carries the submission through the pipeline stages.
type applyState struct {
	resumeHeader *multipart.FileHeader
	submission   *domain.ApplicationSubmission
}

// applyStage either advances the pipeline by filling in state or terminates
// the request with an error outcome. Stages run in a fixed order with no
// loops or retries.
type applyStage func(c *gin.Context, st *applyState) *apperror.AppError

// SubmitApplication godoc
// @Summary      Submit a job application
// @Description  Validates a multipart job application and forwards it to the hiring team. Public endpoint.
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstName    formData  string  true   "First name"
// @Param        lastName     formData  string  true   "Last name"
// @Param        email        formData  string  true   "Email address"
// @Param        phone        formData  string  true   "Phone number"
// @Param        department   formData  string  true   "Department"  Enums(Engineering, Operations, Hospitality, Finance, Marketing, Other)
// @Param        position     formData  string  true   "Position applied for"
// @Param        linkedin     formData  string  false  "LinkedIn profile URL"
// @Param        portfolio    formData  string  false  "Portfolio URL"
// @Param        coverLetter  formData  string  false  "Cover letter"
// @Param        agreeTerms   formData  string  true   "Must be the string \"true\""
// @Param        resume       formData  file    true   "Resume (.pdf, .doc or .docx, max 5MB)"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Failure      429  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /apply [post]
func (h *ApplyHandler) SubmitApplication(c *gin.Context) {
	stages := []applyStage{
		h.parseForm,
		h.validateFields,
		h.verifyResume,
		h.dispatch,
	}

	st := &applyState{}
	for _, stage := range stages {
		if appErr := stage(c, st); appErr != nil {
			c.Error(appErr)
			return
		}
	}

	response.Success(c)
}

// parseForm reads the multipart body and builds the sanitized submission.
// Sanitization (tag stripping, trimming, truncation) happens here, before
// any validation rule sees the values.
func (h *ApplyHandler) parseForm(c *gin.Context, st *applyState) *apperror.AppError {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	form, err := c.MultipartForm()
	if err != nil {
		return apperror.BadRequest("Invalid form data.")
	}

	field := func(name string, max int) string {
		values := form.Value[name]
		if len(values) == 0 {
			return ""
		}
		return validation.Sanitize(values[0], max)
	}

	st.submission = &domain.ApplicationSubmission{
		FirstName:   field("firstName", validation.MaxNameLen),
		LastName:    field("lastName", validation.MaxNameLen),
		Email:       field("email", validation.MaxEmailLen),
		Phone:       field("phone", validation.MaxNameLen),
		Department:  field("department", validation.MaxNameLen),
		Position:    field("position", validation.MaxNameLen),
		LinkedIn:    field("linkedin", validation.MaxURLLen),
		Portfolio:   field("portfolio", validation.MaxURLLen),
		CoverLetter: field("coverLetter", validation.MaxCoverLetterLen),
		AgreeTerms:  field("agreeTerms", validation.MaxNameLen) == "true",
	}

	if files := form.File["resume"]; len(files) > 0 {
		st.resumeHeader = files[0]
	}

	return nil
}

// validateFields runs every field rule and reports all violations together,
// so the applicant can fix everything in one round trip.
func (h *ApplyHandler) validateFields(c *gin.Context, st *applyState) *apperror.AppError {
	if err := h.validate.Struct(st.submission); err != nil {
		messages := validation.FormatValidationErrors(err)
		return apperror.Unprocessable(strings.Join(messages, "; "))
	}
	return nil
}

// verifyResume runs the four attachment gates. A failing gate yields its
// specific message; an I/O failure reading the upload is a malformed body.
func (h *ApplyHandler) verifyResume(c *gin.Context, st *applyState) *apperror.AppError {
	resume := &domain.ResumeFile{}
	if st.resumeHeader != nil {
		resume = &domain.ResumeFile{
			Filename:    st.resumeHeader.Filename,
			ContentType: st.resumeHeader.Header.Get("Content-Type"),
			Size:        st.resumeHeader.Size,
		}
	}

	err := upload.VerifyResume(resume, func() ([]byte, error) {
		src, err := st.resumeHeader.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return io.ReadAll(src)
	})
	if err != nil {
		if upload.IsGateError(err) {
			return apperror.Unprocessable(err.Error())
		}
		return apperror.BadRequest("Invalid form data.")
	}

	st.submission.Resume = resume
	return nil
}

// dispatch forwards the accepted submission to the email provider. Provider
// detail stays server-side; the applicant only sees the generic message.
func (h *ApplyHandler) dispatch(c *gin.Context, st *applyState) *apperror.AppError {
	if err := h.applicationUC.Dispatch(c.Request.Context(), st.submission); err != nil {
		return apperror.Internal("Failed to submit your application. Please try again.", err)
	}
	return nil
}
