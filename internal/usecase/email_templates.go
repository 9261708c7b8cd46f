package usecase

// HTML templates for the two notification emails. html/template escapes every
// interpolated field, so applicant-supplied text can never corrupt the markup.

const hrNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Job Application</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a3c5e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a3c5e; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Job Application</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Applicant:</div>
                <div class="value">{{.FirstName}} {{.LastName}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Department:</div>
                <div class="value">{{.Department}}</div>
            </div>
            <div class="field">
                <div class="label">Position:</div>
                <div class="value">{{.Position}}</div>
            </div>
            {{if .LinkedIn}}<div class="field">
                <div class="label">LinkedIn:</div>
                <div class="value">{{.LinkedIn}}</div>
            </div>{{end}}
            {{if .Portfolio}}<div class="field">
                <div class="label">Portfolio:</div>
                <div class="value">{{.Portfolio}}</div>
            </div>{{end}}
            {{if .CoverLetter}}<div class="field">
                <div class="label">Cover Letter:</div>
                <div class="message-box">{{.CoverLetter}}</div>
            </div>{{end}}
        </div>
        <div class="footer">
            <p>The resume is attached to this email.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Application Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a3c5e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank you for applying</h1>
        </div>
        <div class="content">
            <p>Dear {{.FirstName}},</p>
            <p>We have received your application for the <strong>{{.Position}}</strong> position in our {{.Department}} department.</p>
            <p>Our hiring team will review your application and get back to you if your profile matches the role.</p>
        </div>
        <div class="footer">
            <p>This is an automated confirmation. Please do not reply to this email.</p>
        </div>
    </div>
</body>
</html>`
