package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superisi_backend/internal/model"
)

func newTestAppointmentsStore(t *testing.T) *AppointmentsStore {
	t.Helper()
	settings := NewFileSettingsStore(filepath.Join(t.TempDir(), "settings-fallback.json"))
	return NewAppointmentsStore(settings)
}

func TestAppointmentsCreateRequiresNameAndPhone(t *testing.T) {
	s := newTestAppointmentsStore(t)

	_, err := s.Create(model.AppointmentInput{Name: "", Phone: "05551112233"})
	assert.ErrorIs(t, err, ErrNameAndPhoneRequired)

	_, err = s.Create(model.AppointmentInput{Name: "Ayşe", Phone: "   "})
	assert.ErrorIs(t, err, ErrNameAndPhoneRequired)
}

func TestAppointmentsCreate(t *testing.T) {
	s := newTestAppointmentsStore(t)

	created, err := s.Create(model.AppointmentInput{
		Name:    "  Ayşe Yılmaz  ",
		Phone:   "05551112233",
		Subject: "Saç bakımı",
		Source:  "appointment_modal",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ayşe Yılmaz", created.Name)
	assert.Equal(t, model.AppointmentStatusPending, created.Status)
	assert.Equal(t, model.AppointmentSourceModal, created.Source)
	assert.NotEmpty(t, created.CreatedAt)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestAppointmentsListNewestFirst(t *testing.T) {
	s := newTestAppointmentsStore(t)

	first, err := s.Create(model.AppointmentInput{Name: "İlk", Phone: "1"})
	require.NoError(t, err)
	second, err := s.Create(model.AppointmentInput{Name: "İkinci", Phone: "2"})
	require.NoError(t, err)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestAppointmentsListDropsInvalidRecords(t *testing.T) {
	settings := NewFileSettingsStore(filepath.Join(t.TempDir(), "settings-fallback.json"))
	s := NewAppointmentsStore(settings)

	// Telefonu eksik kayıt elenmeli, isim/telefonlu kayıt kalmalı
	require.NoError(t, settings.Set(KeyAppointments, []map[string]any{
		{"name": "Geçerli", "phone": "05551112233"},
		{"name": "Telefonsuz"},
		{"phone": "05551112234"},
	}))

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Geçerli", list[0].Name)
	// Normalizasyon eksik alanları doldurmalı
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, model.AppointmentStatusPending, list[0].Status)
}

func TestAppointmentsUpdateStatus(t *testing.T) {
	s := newTestAppointmentsStore(t)

	created, err := s.Create(model.AppointmentInput{Name: "Ayşe", Phone: "05551112233"})
	require.NoError(t, err)

	updated, err := s.UpdateStatus(created.ID, model.AppointmentStatusApproved)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, model.AppointmentStatusApproved, updated.Status)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.AppointmentStatusApproved, list[0].Status)
}

func TestAppointmentsUpdateStatusMissing(t *testing.T) {
	s := newTestAppointmentsStore(t)

	updated, err := s.UpdateStatus("yok-boyle-bir-id", model.AppointmentStatusApproved)
	require.NoError(t, err)
	assert.Nil(t, updated)

	updated, err = s.UpdateStatus("", model.AppointmentStatusApproved)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestAppointmentsDelete(t *testing.T) {
	s := newTestAppointmentsStore(t)

	created, err := s.Create(model.AppointmentInput{Name: "Ayşe", Phone: "05551112233"})
	require.NoError(t, err)

	deleted, err := s.DeleteByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, created.ID, deleted.ID)

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	again, err := s.DeleteByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestIncrementVisitorStats(t *testing.T) {
	settings := NewFileSettingsStore(filepath.Join(t.TempDir(), "settings-fallback.json"))
	s := NewAppointmentsStore(settings)

	now := time.Now()
	todayKey := now.UTC().Format("2006-01-02")

	stats, err := s.IncrementVisitorStats(now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalVisitors)
	assert.Equal(t, 1, stats.DailyCounts[todayKey])

	stats, err = s.IncrementVisitorStats(now)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalVisitors)
	assert.Equal(t, 2, stats.DailyCounts[todayKey])

	// Toplam tarihsel nedenlerle string olarak saklanır
	raw, err := settings.Get(KeyVisitorTotal)
	require.NoError(t, err)
	assert.Equal(t, `"2"`, string(raw))
}

func TestIncrementVisitorStatsPrunesOldDays(t *testing.T) {
	settings := NewFileSettingsStore(filepath.Join(t.TempDir(), "settings-fallback.json"))
	s := NewAppointmentsStore(settings)

	now := time.Now()
	oldKey := now.AddDate(0, 0, -(VisitorHistoryDays + 10)).UTC().Format("2006-01-02")
	recentKey := now.AddDate(0, 0, -5).UTC().Format("2006-01-02")

	require.NoError(t, settings.Set(KeyVisitorDaily, map[string]int{
		oldKey:    40,
		recentKey: 3,
	}))

	stats, err := s.IncrementVisitorStats(now)
	require.NoError(t, err)

	_, hasOld := stats.DailyCounts[oldKey]
	assert.False(t, hasOld)
	assert.Equal(t, 3, stats.DailyCounts[recentKey])
}

func TestVisitorStatsToleratesGarbage(t *testing.T) {
	settings := NewFileSettingsStore(filepath.Join(t.TempDir(), "settings-fallback.json"))
	s := NewAppointmentsStore(settings)

	now := time.Now()
	day1 := now.AddDate(0, 0, -1).UTC().Format("2006-01-02")
	day2 := now.AddDate(0, 0, -2).UTC().Format("2006-01-02")
	day3 := now.AddDate(0, 0, -3).UTC().Format("2006-01-02")

	require.NoError(t, settings.Set(KeyVisitorTotal, "sayı değil"))
	require.NoError(t, settings.Set(KeyVisitorDaily, map[string]any{
		day1: "7",
		day2: "bozuk",
		day3: -4,
	}))

	stats, err := s.VisitorStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalVisitors)
	assert.Equal(t, 7, stats.DailyCounts[day1])
	_, ok := stats.DailyCounts[day2]
	assert.False(t, ok)
	_, ok = stats.DailyCounts[day3]
	assert.False(t, ok)
}

func TestVisitorStatsParsesNumericTotal(t *testing.T) {
	settings := NewFileSettingsStore(filepath.Join(t.TempDir(), "settings-fallback.json"))
	s := NewAppointmentsStore(settings)

	require.NoError(t, settings.Set(KeyVisitorTotal, 42))

	stats, err := s.VisitorStats()
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalVisitors)
}

func TestBuildDashboardSeriesEmpty(t *testing.T) {
	now := time.Now()
	series := BuildDashboardSeries(nil, map[string]int{}, 7, now)

	require.Len(t, series, 7)
	assert.Equal(t, now.UTC().Format("2006-01-02"), series[6].Date)
	assert.Equal(t, now.UTC().Format("02.01"), series[6].Label)

	for i, point := range series {
		assert.Zero(t, point.Appointments)
		assert.Zero(t, point.Visitors)
		if i > 0 {
			assert.Greater(t, point.Date, series[i-1].Date)
		}
	}
}

func TestBuildDashboardSeriesCounts(t *testing.T) {
	now := time.Now()
	today := now.UTC().Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).UTC().Format("2006-01-02")

	appointments := []model.Appointment{
		{ID: "1", Name: "A", Phone: "1", CreatedAt: today + "T10:00:00Z"},
		{ID: "2", Name: "B", Phone: "2", CreatedAt: today + "T11:00:00Z"},
		{ID: "3", Name: "C", Phone: "3", CreatedAt: yesterday + "T09:00:00Z"},
	}
	visitors := map[string]int{today: 12, yesterday: 5}

	series := BuildDashboardSeries(appointments, visitors, 7, now)
	require.Len(t, series, 7)

	last := series[6]
	assert.Equal(t, 2, last.Appointments)
	assert.Equal(t, 12, last.Visitors)

	prev := series[5]
	assert.Equal(t, 1, prev.Appointments)
	assert.Equal(t, 5, prev.Visitors)
}

func TestBuildDashboardSeriesDefaultDays(t *testing.T) {
	series := BuildDashboardSeries(nil, nil, 0, time.Now())
	assert.Len(t, series, 7)
}
