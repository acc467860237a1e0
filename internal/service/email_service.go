package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"celebrity-connect/internal/config"
)

type EmailService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, username string) error
	SendAppointmentStatusEmail(ctx context.Context, toEmail, username, celebrityName, status, date string) error
}

type emailService struct {
	client *resend.Client
	cfg    *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<h2>Welcome to Celebrity Connect, {{.Username}}!</h2>
<p>Your account is ready. Browse celebrity profiles and book your first appointment.</p>
<p><a href="http://{{.Domain}}/login">Log in</a></p>
`))

var appointmentStatusTemplate = template.Must(template.New("appointment_status").Parse(`
<h2>Appointment {{.Status}}</h2>
<p>Hi {{.Username}},</p>
<p>Your appointment with <strong>{{.CelebrityName}}</strong> on {{.Date}} has been {{.Status}}.</p>
<p><a href="http://{{.Domain}}/appointments">View your appointments</a></p>
`))

func (s *emailService) send(toEmail, subject string, tmpl *template.Template, data interface{}) error {
	// No API key means email is not configured; skip silently so the
	// degraded/local setup still works.
	if s.cfg.ResendAPIKey == "" {
		return nil
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Celebrity Connect <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *emailService) SendWelcomeEmail(ctx context.Context, toEmail, username string) error {
	data := struct {
		Username string
		Domain   string
	}{
		Username: username,
		Domain:   s.cfg.Domain,
	}
	return s.send(toEmail, "Welcome to Celebrity Connect!", welcomeTemplate, data)
}

func (s *emailService) SendAppointmentStatusEmail(ctx context.Context, toEmail, username, celebrityName, status, date string) error {
	data := struct {
		Username      string
		CelebrityName string
		Status        string
		Date          string
		Domain        string
	}{
		Username:      username,
		CelebrityName: celebrityName,
		Status:        status,
		Date:          date,
		Domain:        s.cfg.Domain,
	}
	subject := fmt.Sprintf("Your appointment with %s was %s", celebrityName, status)
	return s.send(toEmail, subject, appointmentStatusTemplate, data)
}
