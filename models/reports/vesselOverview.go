package reports

import (
	"github.com/mmdatafocus/fleetops_backend/models"
)

type VesselStatus string

const (
	VesselStatusOK       VesselStatus = "OK"
	VesselStatusWarning  VesselStatus = "WARNING"
	VesselStatusCritical VesselStatus = "CRITICAL"
)

type VesselOverviewRow struct {
	VesselId          string       `json:"assetId"`
	VesselName        string       `json:"assetName"`
	TotalCertificates int          `json:"totalCertificates"`
	Expired           int          `json:"expired"`
	ExpiringSoon      int          `json:"expiringSoon"`
	CrewActive        int          `json:"crewActive"`
	FuelNet           string       `json:"fuelNet,omitempty"`
	Status            VesselStatus `json:"status"`
}

// VesselOverviewOf builds one row per in-scope vessel, in scope order.
func VesselOverviewOf(vesselIds []string, names map[string]string, certs []models.CertificateRecord, crew []models.CrewMember, fuel FuelStats) []VesselOverviewRow {
	rows := make([]VesselOverviewRow, 0, len(vesselIds))
	index := make(map[string]int, len(vesselIds))
	for _, id := range vesselIds {
		if _, ok := index[id]; ok {
			continue
		}
		index[id] = len(rows)
		rows = append(rows, VesselOverviewRow{VesselId: id, VesselName: vesselLabel(names[id], id)})
	}

	for _, c := range certs {
		i, ok := index[c.VesselId]
		if !ok {
			continue
		}
		rows[i].TotalCertificates++
		switch c.Status {
		case models.CertificateStatusExpired:
			rows[i].Expired++
		case models.CertificateStatusExpiringSoon:
			rows[i].ExpiringSoon++
		}
	}
	for _, m := range crew {
		if i, ok := index[m.VesselId]; ok && m.Status == models.CrewStatusActive {
			rows[i].CrewActive++
		}
	}

	for i := range rows {
		if balance, ok := fuel.BalancesByVessel[rows[i].VesselId]; ok {
			rows[i].FuelNet = balance.Net
		}
		switch {
		case rows[i].Expired > 0:
			rows[i].Status = VesselStatusCritical
		case rows[i].ExpiringSoon > 0:
			rows[i].Status = VesselStatusWarning
		default:
			rows[i].Status = VesselStatusOK
		}
	}
	return rows
}

type OverviewKpis struct {
	TotalVessels     int                        `json:"totalVessels"`
	Certificates     CertificateStats           `json:"certificates"`
	CrewActive       int                        `json:"crewActive"`
	CriticalAlerts   int                        `json:"criticalAlerts"`
	CertificatesList []models.CertificateRecord `json:"certificatesList"`
}

// OverviewKpisOf condenses the headline numbers. listSize caps the
// nearest-expiry certificate list.
func OverviewKpisOf(vesselIds []string, certStats CertificateStats, byExpiry []models.CertificateRecord, crew CrewStats, listSize int) OverviewKpis {
	n := len(byExpiry)
	if listSize > 0 && n > listSize {
		n = listSize
	}
	list := make([]models.CertificateRecord, n)
	copy(list, byExpiry[:n])
	return OverviewKpis{
		TotalVessels:     len(vesselIds),
		Certificates:     certStats,
		CrewActive:       crew.Active,
		CriticalAlerts:   certStats.Critical,
		CertificatesList: list,
	}
}
