package cron

import (
	"log"
	"sync"
	"time"

	"superisi_backend/internal/model"
	"superisi_backend/internal/store"
	"superisi_backend/pkg/email"

	"github.com/robfig/cron/v3"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

// InitAppointmentStatsCron her pazar akşamı yöneticiye haftalık randevu
// özetini gönderen cron görevini başlatır.
func InitAppointmentStatsCron(appointments *store.AppointmentsStore, notifyTo string) {
	if notifyTo == "" {
		log.Printf("Appointment stats cron disabled: no notify address configured")
		return
	}

	c := cron.New()

	// Her pazar saat 20:00'da çalışacak
	_, err := c.AddFunc("0 20 * * 0", func() {
		mutex.Lock()
		defer mutex.Unlock()

		// Son çalışma zamanını kontrol et
		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Weekly appointment stats already sent, skipping...")
			return
		}

		sendWeeklyAppointmentStats(appointments, notifyTo)
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize appointment stats cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Appointment stats cron initialized successfully")
}

func sendWeeklyAppointmentStats(appointments *store.AppointmentsStore, notifyTo string) {
	weekStart := time.Now().AddDate(0, 0, -7)
	weekStartKey := weekStart.UTC().Format("2006-01-02")
	log.Printf("Running weekly appointment stats since: %s", weekStartKey)

	all, err := appointments.List()
	if err != nil {
		log.Printf("Error fetching appointments for weekly stats: %v", err)
		return
	}

	var total, pending int
	for _, appt := range all {
		if appt.CreatedDay() < weekStartKey {
			continue
		}
		total++
		if appt.Status == model.AppointmentStatusPending {
			pending++
		}
	}

	stats, err := appointments.VisitorStats()
	if err != nil {
		log.Printf("Error fetching visitor stats for weekly summary: %v", err)
	}

	visitors := 0
	for dateKey, count := range stats.DailyCounts {
		if dateKey >= weekStartKey {
			visitors += count
		}
	}

	if email.GlobalEmailService == nil {
		log.Printf("Email service not initialized, skipping weekly summary")
		return
	}

	err = email.GlobalEmailService.SendWeeklySummary(notifyTo, email.WeeklySummaryData{
		WeekStart:         weekStart,
		TotalAppointments: total,
		PendingCount:      pending,
		TotalVisitors:     visitors,
	})
	if err != nil {
		log.Printf("Error sending weekly summary email: %v", err)
		return
	}

	log.Printf("Weekly summary sent: %d appointments, %d pending, %d visitors", total, pending, visitors)
}
