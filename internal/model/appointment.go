package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "pending"
	AppointmentStatusApproved AppointmentStatus = "approved"
	AppointmentStatusRejected AppointmentStatus = "rejected"
)

type AppointmentSource string

const (
	AppointmentSourceContactForm AppointmentSource = "contact_form"
	AppointmentSourceModal       AppointmentSource = "appointment_modal"
)

// Appointment bir randevu/iletişim talebidir. Koleksiyonun tamamı tek bir
// setting altında JSON dizisi olarak saklanır; zaman damgaları bu yüzden
// RFC3339 string olarak tutulur.
type Appointment struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email,omitempty"`
	Subject       string            `json:"subject,omitempty"`
	Message       string            `json:"message,omitempty"`
	PreferredDate string            `json:"preferred_date,omitempty"`
	PreferredTime string            `json:"preferred_time,omitempty"`
	Source        AppointmentSource `json:"source"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

// CreatedDay returns the ISO calendar date (YYYY-MM-DD) of the record.
func (a Appointment) CreatedDay() string {
	if len(a.CreatedAt) >= 10 {
		return a.CreatedAt[:10]
	}
	return ""
}

func IsAppointmentStatus(value string) bool {
	switch AppointmentStatus(value) {
	case AppointmentStatusPending, AppointmentStatusApproved, AppointmentStatusRejected:
		return true
	}
	return false
}

func NormalizeAppointmentStatus(value string) AppointmentStatus {
	if IsAppointmentStatus(strings.TrimSpace(value)) {
		return AppointmentStatus(strings.TrimSpace(value))
	}
	return AppointmentStatusPending
}

func NormalizeAppointmentSource(value string) AppointmentSource {
	if AppointmentSource(strings.TrimSpace(value)) == AppointmentSourceModal {
		return AppointmentSourceModal
	}
	return AppointmentSourceContactForm
}

// NormalizeAppointment trims all fields and coerces enums. Records without
// a name or phone are invalid and get dropped by the caller. Missing ids
// and timestamps are filled so legacy rows stay usable.
func NormalizeAppointment(a Appointment, now time.Time) (Appointment, bool) {
	a.Name = strings.TrimSpace(a.Name)
	a.Phone = strings.TrimSpace(a.Phone)
	if a.Name == "" || a.Phone == "" {
		return Appointment{}, false
	}

	a.Email = strings.TrimSpace(a.Email)
	a.Subject = strings.TrimSpace(a.Subject)
	a.Message = strings.TrimSpace(a.Message)
	a.PreferredDate = strings.TrimSpace(a.PreferredDate)
	a.PreferredTime = strings.TrimSpace(a.PreferredTime)
	a.Source = NormalizeAppointmentSource(string(a.Source))
	a.Status = NormalizeAppointmentStatus(string(a.Status))

	if strings.TrimSpace(a.ID) == "" {
		a.ID = uuid.New().String()
	}
	if strings.TrimSpace(a.CreatedAt) == "" {
		a.CreatedAt = now.UTC().Format(time.RFC3339)
	}
	if strings.TrimSpace(a.UpdatedAt) == "" {
		a.UpdatedAt = a.CreatedAt
	}

	return a, true
}

// AppointmentInput is the create payload from the contact form or the
// appointment modal.
type AppointmentInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Source        string `json:"source"`
}
