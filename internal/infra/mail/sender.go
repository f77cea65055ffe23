package mail

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/ironlady/leadbot/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from, salesInbox string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		SalesInbox: salesInbox,
	}
}

// NotifyLead mails the sales desk a summary of a freshly captured lead.
func (s *EmailSender) NotifyLead(ctx context.Context, payload queue.LeadCapturedPayload) error {
	data := LeadAlertData{
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Experience:  payload.Experience,
		CurrentRole: payload.CurrentRole,
		CareerGoals: strings.Join(payload.CareerGoals, ", "),
		Challenges:  strings.Join(payload.Challenges, ", "),
		Programs:    strings.Join(payload.InterestedPrograms, ", "),
		CapturedAt:  payload.CapturedAt.Format(time.RFC1123),
	}

	tmplPath := filepath.Join("templates", "lead_alert.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read alert template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s", payload.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}
