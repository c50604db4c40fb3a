package store

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"superisi_backend/internal/model"
	"superisi_backend/pkg/utils/jsonutil"
)

// Ziyaretçi histogramı en fazla bu kadar günü tutar.
const VisitorHistoryDays = 120

var ErrNameAndPhoneRequired = errors.New("name and phone are required")

// AppointmentsStore randevu koleksiyonunu tek bir setting altında JSON
// dizisi olarak saklar. Her işlem diziyi komple okur, bellekte değiştirir
// ve komple geri yazar; satır bazlı adresleme yoktur.
type AppointmentsStore struct {
	settings SettingsStore
}

func NewAppointmentsStore(settings SettingsStore) *AppointmentsStore {
	return &AppointmentsStore{settings: settings}
}

// List normalize edilemeyen kayıtları eler ve created_at'e göre en
// yeniden eskiye sıralar.
func (s *AppointmentsStore) List() ([]model.Appointment, error) {
	raw, err := s.settings.Get(KeyAppointments)
	if err != nil {
		return nil, err
	}

	var stored []model.Appointment
	jsonutil.Decode(raw, &stored)

	now := time.Now()
	appointments := make([]model.Appointment, 0, len(stored))
	for _, entry := range stored {
		if normalized, ok := model.NormalizeAppointment(entry, now); ok {
			appointments = append(appointments, normalized)
		}
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt > appointments[j].CreatedAt
	})
	return appointments, nil
}

func (s *AppointmentsStore) Create(input model.AppointmentInput) (model.Appointment, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" {
		return model.Appointment{}, ErrNameAndPhoneRequired
	}

	now := time.Now().UTC().Format(time.RFC3339)
	appointment := model.Appointment{
		ID:            uuid.New().String(),
		Name:          name,
		Phone:         phone,
		Email:         strings.TrimSpace(input.Email),
		Subject:       strings.TrimSpace(input.Subject),
		Message:       strings.TrimSpace(input.Message),
		PreferredDate: strings.TrimSpace(input.PreferredDate),
		PreferredTime: strings.TrimSpace(input.PreferredTime),
		Source:        model.NormalizeAppointmentSource(input.Source),
		Status:        model.AppointmentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	current, err := s.List()
	if err != nil {
		return model.Appointment{}, err
	}

	next := append([]model.Appointment{appointment}, current...)
	if err := s.settings.Set(KeyAppointments, next); err != nil {
		return model.Appointment{}, err
	}
	return appointment, nil
}

// UpdateStatus returns nil when no record matches; the handler maps
// that to 404.
func (s *AppointmentsStore) UpdateStatus(id string, status model.AppointmentStatus) (*model.Appointment, error) {
	normalizedID := strings.TrimSpace(id)
	if normalizedID == "" {
		return nil, nil
	}

	current, err := s.List()
	if err != nil {
		return nil, err
	}

	for i := range current {
		if current[i].ID != normalizedID {
			continue
		}
		current[i].Status = status
		current[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		if err := s.settings.Set(KeyAppointments, current); err != nil {
			return nil, err
		}
		updated := current[i]
		return &updated, nil
	}
	return nil, nil
}

func (s *AppointmentsStore) DeleteByID(id string) (*model.Appointment, error) {
	normalizedID := strings.TrimSpace(id)
	if normalizedID == "" {
		return nil, nil
	}

	current, err := s.List()
	if err != nil {
		return nil, err
	}

	for i := range current {
		if current[i].ID != normalizedID {
			continue
		}
		deleted := current[i]
		next := append(append([]model.Appointment{}, current[:i]...), current[i+1:]...)
		if err := s.settings.Set(KeyAppointments, next); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, nil
}

type VisitorStats struct {
	TotalVisitors int            `json:"totalVisitors"`
	DailyCounts   map[string]int `json:"dailyCounts"`
}

func pruneDailyCounts(counts map[string]int, now time.Time) map[string]int {
	cutoffKey := now.AddDate(0, 0, -VisitorHistoryDays).UTC().Format("2006-01-02")
	pruned := make(map[string]int, len(counts))
	for dateKey, count := range counts {
		if dateKey >= cutoffKey {
			pruned[dateKey] = count
		}
	}
	return pruned
}

// parseVisitorDailyCounts histogramı çözer; sayıya çevrilemeyen veya
// negatif girdiler atılır.
func parseVisitorDailyCounts(raw []byte, now time.Time) map[string]int {
	parsed := map[string]any{}
	jsonutil.Decode(raw, &parsed)

	counts := make(map[string]int, len(parsed))
	for dateKey, value := range parsed {
		var count int
		switch v := value.(type) {
		case float64:
			count = int(v)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				continue
			}
			count = n
		default:
			continue
		}
		if count >= 0 {
			counts[dateKey] = count
		}
	}
	return pruneDailyCounts(counts, now)
}

func parseVisitorTotal(raw []byte) int {
	var asNumber float64
	if jsonutil.Decode(raw, &asNumber) {
		return int(asNumber)
	}
	var asString string
	if jsonutil.Decode(raw, &asString) {
		if n, err := strconv.Atoi(strings.TrimSpace(asString)); err == nil {
			return n
		}
	}
	return 0
}

func (s *AppointmentsStore) VisitorStats() (VisitorStats, error) {
	totalRaw, err := s.settings.Get(KeyVisitorTotal)
	if err != nil {
		return VisitorStats{DailyCounts: map[string]int{}}, err
	}
	dailyRaw, err := s.settings.Get(KeyVisitorDaily)
	if err != nil {
		return VisitorStats{DailyCounts: map[string]int{}}, err
	}

	return VisitorStats{
		TotalVisitors: parseVisitorTotal(totalRaw),
		DailyCounts:   parseVisitorDailyCounts(dailyRaw, time.Now()),
	}, nil
}

// IncrementVisitorStats is the only entry point that mutates the
// visitor counters. Session-level deduplication is the caller's job.
func (s *AppointmentsStore) IncrementVisitorStats(now time.Time) (VisitorStats, error) {
	stats, err := s.VisitorStats()
	if err != nil {
		return stats, err
	}

	todayKey := now.UTC().Format("2006-01-02")
	stats.DailyCounts[todayKey]++
	stats.DailyCounts = pruneDailyCounts(stats.DailyCounts, now)
	stats.TotalVisitors++

	// Toplam sayaç tarihsel olarak string saklanır
	if err := s.settings.Set(KeyVisitorTotal, strconv.Itoa(stats.TotalVisitors)); err != nil {
		return stats, err
	}
	if err := s.settings.Set(KeyVisitorDaily, stats.DailyCounts); err != nil {
		return stats, err
	}
	return stats, nil
}

type DashboardSeriesPoint struct {
	Date         string `json:"date"`
	Label        string `json:"label"`
	Appointments int    `json:"appointments"`
	Visitors     int    `json:"visitors"`
}

// BuildDashboardSeries son `days` takvim günü için (eskiden yeniye)
// randevu ve ziyaretçi sayılarını üretir. Eksik veri 0 olarak döner.
func BuildDashboardSeries(appointments []model.Appointment, visitorDailyCounts map[string]int, days int, now time.Time) []DashboardSeriesPoint {
	if days <= 0 {
		days = 7
	}

	appointmentsByDate := make(map[string]int, len(appointments))
	for _, appointment := range appointments {
		if dateKey := appointment.CreatedDay(); dateKey != "" {
			appointmentsByDate[dateKey]++
		}
	}

	series := make([]DashboardSeriesPoint, 0, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i))
		dateKey := date.UTC().Format("2006-01-02")
		series = append(series, DashboardSeriesPoint{
			Date:         dateKey,
			Label:        date.UTC().Format("02.01"),
			Appointments: appointmentsByDate[dateKey],
			Visitors:     visitorDailyCounts[dateKey],
		})
	}
	return series
}
