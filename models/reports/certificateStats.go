package reports

import (
	"sort"

	"github.com/mmdatafocus/fleetops_backend/models"
)

type CertificateStats struct {
	Total        int `json:"total"`
	Valid        int `json:"valid"`
	ExpiringSoon int `json:"expiringSoon"`
	Expired      int `json:"expired"`
	Pending      int `json:"pending"`
	// Critical is Expired + ExpiringSoon.
	Critical int `json:"critical"`
}

// CertificateStatsOf counts certificates by the status the fleet API assigned.
// Unknown statuses count toward Total only.
func CertificateStatsOf(certs []models.CertificateRecord) CertificateStats {
	stats := CertificateStats{Total: len(certs)}
	for _, c := range certs {
		switch c.Status {
		case models.CertificateStatusValid:
			stats.Valid++
		case models.CertificateStatusExpiringSoon:
			stats.ExpiringSoon++
		case models.CertificateStatusExpired:
			stats.Expired++
		case models.CertificateStatusPending:
			stats.Pending++
		}
	}
	stats.Critical = stats.Expired + stats.ExpiringSoon
	return stats
}

// SortCertificatesByExpiry returns a copy ordered by expiry date ascending.
// Certificates without an expiry date go last; ties keep input order.
func SortCertificatesByExpiry(certs []models.CertificateRecord) []models.CertificateRecord {
	out := make([]models.CertificateRecord, len(certs))
	copy(out, certs)
	sort.SliceStable(out, func(i, j int) bool {
		return compareInstants(out[i].ExpiryDate, out[j].ExpiryDate) < 0
	})
	return out
}
