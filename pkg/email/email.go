// pkg/email/email.go
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
	client    *http.Client
}

type emailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// AppointmentNotificationData yeni randevu talebinin bildirim içeriğidir.
type AppointmentNotificationData struct {
	Name          string
	Phone         string
	Email         string
	Subject       string
	Message       string
	PreferredDate string
	PreferredTime string
	Source        string
}

// WeeklySummaryData haftalık özet e-postasının içeriğidir.
type WeeklySummaryData struct {
	WeekStart         time.Time
	TotalAppointments int
	PendingCount      int
	TotalVisitors     int
}

func NewEmailService(apiKey, from string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      from,
		templates: templates,
		client:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *EmailService) send(to, subject, html string) error {
	body, err := json.Marshal(emailPayload{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email send failed (%d): %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func (s *EmailService) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendAppointmentNotification yeni talep geldiğinde salona haber verir.
func (s *EmailService) SendAppointmentNotification(to string, data AppointmentNotificationData) error {
	html, err := s.render("appointment_notification", data)
	if err != nil {
		return err
	}
	return s.send(to, "Yeni Randevu Talebi: "+data.Name, html)
}

// SendWeeklySummary pazar akşamları haftalık istatistikleri gönderir.
func (s *EmailService) SendWeeklySummary(to string, data WeeklySummaryData) error {
	html, err := s.render("weekly_summary", data)
	if err != nil {
		return err
	}
	return s.send(to, "Haftalık Randevu Özeti", html)
}
