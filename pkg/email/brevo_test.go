package email_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"careers-api/config"
	"careers-api/internal/domain"
	"careers-api/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(apiURL string) *email.Client {
	return email.NewClient(&config.Config{
		BrevoAPIKey: "test-key",
		BrevoAPIURL: apiURL,
		SenderName:  "Careers",
		SenderEmail: "noreply@example.com",
	})
}

func TestSendPostsBrevoPayload(t *testing.T) {
	var gotBody map[string]any
	var gotAPIKey, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotAPIKey = r.Header.Get("api-key")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	err := client.Send(context.Background(), &domain.EmailMessage{
		ToName:      "Ada Lovelace",
		ToEmail:     "ada@example.com",
		Subject:     "We received your application",
		HTMLContent: "<p>Hello</p>",
		Attachment:  &domain.EmailAttachment{Name: "cv.pdf", Content: "JVBERg=="},
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "application/json", gotContentType)

	sender := gotBody["sender"].(map[string]any)
	assert.Equal(t, "Careers", sender["name"])
	assert.Equal(t, "noreply@example.com", sender["email"])

	to := gotBody["to"].([]any)
	require.Len(t, to, 1)
	assert.Equal(t, "ada@example.com", to[0].(map[string]any)["email"])

	assert.Equal(t, "We received your application", gotBody["subject"])
	assert.Equal(t, "<p>Hello</p>", gotBody["htmlContent"])

	attachments := gotBody["attachment"].([]any)
	require.Len(t, attachments, 1)
	assert.Equal(t, "cv.pdf", attachments[0].(map[string]any)["name"])
	assert.Equal(t, "JVBERg==", attachments[0].(map[string]any)["content"])
}

func TestSendOmitsAttachmentWhenAbsent(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	err := client.Send(context.Background(), &domain.EmailMessage{
		ToEmail:     "ada@example.com",
		Subject:     "s",
		HTMLContent: "<p>b</p>",
	})
	require.NoError(t, err)
	_, exists := gotBody["attachment"]
	assert.False(t, exists)
}

func TestSendReportsProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	err := client.Send(context.Background(), &domain.EmailMessage{
		ToEmail:     "ada@example.com",
		Subject:     "s",
		HTMLContent: "b",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, newClient("https://api.brevo.com/v3/smtp/email").IsConfigured())

	unconfigured := email.NewClient(&config.Config{})
	assert.False(t, unconfigured.IsConfigured())
}
