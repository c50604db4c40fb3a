// pkg/email/templates.go
package email

import "html/template"

const appointmentNotificationTemplate = `
{{define "appointment_notification"}}
<h2>Yeni Randevu Talebi</h2>
<p><strong>Ad Soyad:</strong> {{.Name}}</p>
<p><strong>Telefon:</strong> {{.Phone}}</p>
{{if .Email}}<p><strong>E-posta:</strong> {{.Email}}</p>{{end}}
{{if .Subject}}<p><strong>Konu:</strong> {{.Subject}}</p>{{end}}
{{if .PreferredDate}}<p><strong>Tercih Edilen Tarih:</strong> {{.PreferredDate}} {{.PreferredTime}}</p>{{end}}
{{if .Message}}<p><strong>Mesaj:</strong></p><p>{{.Message}}</p>{{end}}
<p><em>Kaynak: {{.Source}}</em></p>
{{end}}
`

const weeklySummaryTemplate = `
{{define "weekly_summary"}}
<h2>Haftalık Özet</h2>
<p>{{.WeekStart.Format "02.01.2006"}} haftası:</p>
<ul>
  <li>Toplam randevu talebi: {{.TotalAppointments}}</li>
  <li>Bekleyen talep: {{.PendingCount}}</li>
  <li>Toplam ziyaretçi: {{.TotalVisitors}}</li>
</ul>
{{end}}
`

func loadTemplates() (*template.Template, error) {
	t := template.New("emails")

	for _, raw := range []string{
		appointmentNotificationTemplate,
		weeklySummaryTemplate,
	} {
		if _, err := t.Parse(raw); err != nil {
			return nil, err
		}
	}

	return t, nil
}
