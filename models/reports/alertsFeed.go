package reports

import (
	"sort"
	"time"

	"github.com/mmdatafocus/fleetops_backend/models"
)

type AlertDomain string

const (
	AlertDomainCertificate AlertDomain = "CERTIFICATE"
	AlertDomainMaintenance AlertDomain = "MAINTENANCE"
)

type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "CRITICAL"
	AlertSeverityWarning  AlertSeverity = "WARNING"
)

func (s AlertSeverity) rank() int {
	if s == AlertSeverityCritical {
		return 0
	}
	return 1
}

type AlertItem struct {
	ID       string        `json:"id"`
	Domain   AlertDomain   `json:"type"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Severity AlertSeverity `json:"severity"`
	Date     *time.Time    `json:"date"`
}

// AlertFeedOf merges certificate and maintenance signals into one feed:
// critical first, then by date ascending with undated items last. The feed is
// not truncated.
func AlertFeedOf(certs []models.CertificateRecord, tasks []models.MaintenanceTask, h Horizon) []AlertItem {
	alerts := make([]AlertItem, 0)

	for _, c := range certs {
		var severity AlertSeverity
		switch c.Status {
		case models.CertificateStatusExpired:
			severity = AlertSeverityCritical
		case models.CertificateStatusExpiringSoon:
			severity = AlertSeverityWarning
		default:
			continue
		}
		alerts = append(alerts, AlertItem{
			ID:       "cert-" + c.ID,
			Domain:   AlertDomainCertificate,
			Title:    c.Name,
			Subtitle: vesselLabel(c.VesselName, c.VesselId),
			Severity: severity,
			Date:     c.ExpiryDate,
		})
	}

	for _, m := range tasks {
		var severity AlertSeverity
		switch {
		case IsOverdue(m, h.Now):
			severity = AlertSeverityCritical
		case IsDueSoon(m, h):
			severity = AlertSeverityWarning
		default:
			continue
		}
		alerts = append(alerts, AlertItem{
			ID:       "mnt-" + m.ID,
			Domain:   AlertDomainMaintenance,
			Title:    m.Title,
			Subtitle: vesselLabel(m.VesselName, m.VesselId),
			Severity: severity,
			Date:     m.DueDate,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := alerts[i].Severity.rank(), alerts[j].Severity.rank()
		if ri != rj {
			return ri < rj
		}
		return compareInstants(alerts[i].Date, alerts[j].Date) < 0
	})
	return alerts
}

func vesselLabel(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
