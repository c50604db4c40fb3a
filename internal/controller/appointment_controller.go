package controller

import (
	"errors"
	"log"

	"superisi_backend/internal/model"
	"superisi_backend/internal/store"
	"superisi_backend/pkg/email"

	"github.com/gofiber/fiber/v2"
)

var notifyEmail string

// InitNotifications randevu bildirimlerinin gideceği adresi bağlar.
// Boş adres bildirimleri kapatır.
func InitNotifications(to string) {
	notifyEmail = to
}

// GetAppointments randevuları en yeniden eskiye döner. status ve limit
// query parametreleriyle filtrelenebilir.
func GetAppointments(c *fiber.Ctx) error {
	noCache(c)

	appointments, err := appointmentsStore.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch appointments",
		})
	}

	if status := c.Query("status"); status != "" {
		if !model.IsAppointmentStatus(status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status",
			})
		}
		filtered := make([]model.Appointment, 0, len(appointments))
		for _, appt := range appointments {
			if appt.Status == model.AppointmentStatus(status) {
				filtered = append(filtered, appt)
			}
		}
		appointments = filtered
	}

	if limit := c.QueryInt("limit"); limit > 0 && limit < len(appointments) {
		appointments = appointments[:limit]
	}

	return c.JSON(appointments)
}

// CreateAppointment form veya modal üzerinden yeni randevu talebi alır
func CreateAppointment(c *fiber.Ctx) error {
	input := new(model.AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	appointment, err := appointmentsStore.Create(*input)
	if err != nil {
		if errors.Is(err, store.ErrNameAndPhoneRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Name and phone are required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create appointment",
		})
	}

	// Bildirim e-postası best-effort: hata sadece loglanır
	if email.GlobalEmailService != nil && notifyEmail != "" {
		go func(appt model.Appointment) {
			err := email.GlobalEmailService.SendAppointmentNotification(notifyEmail, email.AppointmentNotificationData{
				Name:          appt.Name,
				Phone:         appt.Phone,
				Email:         appt.Email,
				Subject:       appt.Subject,
				Message:       appt.Message,
				PreferredDate: appt.PreferredDate,
				PreferredTime: appt.PreferredTime,
				Source:        string(appt.Source),
			})
			if err != nil {
				log.Printf("Could not send appointment notification: %v", err)
			}
		}(appointment)
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

type AppointmentStatusInput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateAppointmentStatus randevuyu onaylar veya reddeder
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	input := new(AppointmentStatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Appointment id is required",
		})
	}
	if !model.IsAppointmentStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status",
		})
	}

	updated, err := appointmentsStore.UpdateStatus(input.ID, model.AppointmentStatus(input.Status))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update appointment",
		})
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	return c.JSON(updated)
}

// DeleteAppointment randevuyu siler. id query veya gövdeden alınır.
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		var body struct {
			ID string `json:"id"`
		}
		if err := c.BodyParser(&body); err == nil {
			id = body.ID
		}
	}
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Appointment id is required",
		})
	}

	deleted, err := appointmentsStore.DeleteByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete appointment",
		})
	}
	if deleted == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}
