package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-hiring-pipeline/config"
)

// EmailService sends best-effort email copies of inbox notifications.
// Failures here never affect the primary write.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// InterviewEmailData holds the data for interview notification emails
type InterviewEmailData struct {
	CandidateName string
	Position      string
	Interviewer   string
	Status        string
	Result        string
	Rating        int
	Feedback      string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

const interviewEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Interview Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>Interview Update</h2></div>
        <div class="content">
            <div class="field"><span class="label">Candidate:</span> {{.CandidateName}}</div>
            <div class="field"><span class="label">Position:</span> {{.Position}}</div>
            <div class="field"><span class="label">Interviewer:</span> {{.Interviewer}}</div>
            <div class="field"><span class="label">Status:</span> {{.Status}}</div>
            <div class="field"><span class="label">Result:</span> {{.Result}}</div>
            <div class="field"><span class="label">Rating:</span> {{.Rating}}/5</div>
            <div class="field"><span class="label">Feedback:</span> {{.Feedback}}</div>
        </div>
    </div>
</body>
</html>`

// IsConfigured reports whether SMTP credentials are present.
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// SendInterviewUpdate sends an interview notification email to the
// hiring manager.
func (s *EmailService) SendInterviewUpdate(to string, data InterviewEmailData) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service not configured")
	}

	tmpl, err := template.New("interview").Parse(interviewEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Interview update: %s - %s", data.CandidateName, data.Position)
	msg := []byte("From: " + s.fromEmail + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		body.String())

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
