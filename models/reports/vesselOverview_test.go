package reports

import (
	"testing"

	"github.com/mmdatafocus/fleetops_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVesselOverviewOf(t *testing.T) {
	certs := []models.CertificateRecord{
		cert("c1", "V1", models.CertificateStatusExpired, daysFromNow(-3)),
		cert("c2", "V1", models.CertificateStatusExpiringSoon, daysFromNow(5)),
		cert("c3", "V2", models.CertificateStatusValid, daysFromNow(90)),
		cert("c4", "V9", models.CertificateStatusExpired, daysFromNow(-1)),
	}
	crew := []models.CrewMember{
		crewMember("m1", "V2", "Aung", models.CrewStatusActive),
		crewMember("m2", "V2", "Hla", models.CrewStatusInactive),
	}
	fuelStats := FuelStats{BalancesByVessel: map[string]VesselFuelBalance{
		"V2": {Unit: models.FuelUnitMetricTon, Net: "12.5"},
	}}
	names := map[string]string{"V1": "Aurora"}

	rows := VesselOverviewOf([]string{"V1", "V2", "V1", "V3"}, names, certs, crew, fuelStats)
	require.Len(t, rows, 3)

	assert.Equal(t, "Aurora", rows[0].VesselName)
	assert.Equal(t, 2, rows[0].TotalCertificates)
	assert.Equal(t, 1, rows[0].Expired)
	assert.Equal(t, VesselStatusCritical, rows[0].Status)

	assert.Equal(t, "V2", rows[1].VesselName)
	assert.Equal(t, 1, rows[1].CrewActive)
	assert.Equal(t, "12.5", rows[1].FuelNet)
	assert.Equal(t, VesselStatusOK, rows[1].Status)

	assert.Equal(t, 0, rows[2].TotalCertificates)
	assert.Equal(t, VesselStatusOK, rows[2].Status)
}

func TestOverviewKpisOf_CapsList(t *testing.T) {
	var certs []models.CertificateRecord
	for i := 0; i < 12; i++ {
		certs = append(certs, cert(string(rune('a'+i)), "V1", models.CertificateStatusValid, daysFromNow(i)))
	}
	stats := CertificateStatsOf(certs)
	kpis := OverviewKpisOf([]string{"V1"}, stats, SortCertificatesByExpiry(certs), CrewStats{Active: 4}, 10)

	assert.Equal(t, 1, kpis.TotalVessels)
	assert.Equal(t, 4, kpis.CrewActive)
	assert.Equal(t, stats.Critical, kpis.CriticalAlerts)
	require.Len(t, kpis.CertificatesList, 10)
	assert.Equal(t, "a", kpis.CertificatesList[0].ID)

	uncapped := OverviewKpisOf(nil, stats, certs, CrewStats{}, 0)
	assert.Len(t, uncapped.CertificatesList, 12)
}

func TestOverviewKpisOf_ListDoesNotAliasInput(t *testing.T) {
	byExpiry := []models.CertificateRecord{
		cert("c1", "V1", models.CertificateStatusValid, daysFromNow(1)),
		cert("c2", "V1", models.CertificateStatusValid, daysFromNow(2)),
	}
	kpis := OverviewKpisOf([]string{"V1"}, CertificateStatsOf(byExpiry), byExpiry, CrewStats{}, 1)
	require.Len(t, kpis.CertificatesList, 1)

	kpis.CertificatesList[0].Name = "changed"
	assert.Equal(t, "Certificate c1", byExpiry[0].Name)
}
