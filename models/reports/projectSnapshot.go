package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/fleetops_backend/config"
	"github.com/mmdatafocus/fleetops_backend/models"
)

const overviewListSize = 10

type SnapshotOptions struct {
	// TopVessels caps CrewStats.CrewByVessel. Zero or less keeps every vessel.
	TopVessels int
	DueSoon    time.Duration
}

func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		TopVessels: config.DashboardTopVessels(),
		DueSoon:    config.DueSoonWindow(),
	}
}

// ProjectSnapshot is everything the project dashboard shows, computed in one
// pass over one project's records.
type ProjectSnapshot struct {
	PassId     string    `json:"passId"`
	ProjectId  string    `json:"projectId"`
	ComputedAt time.Time `json:"computedAt"`

	Certificates CertificateStats `json:"certificates"`
	Maintenance  MaintenanceStats `json:"maintenance"`
	Fuel         FuelStats        `json:"fuel"`
	Crew         CrewStats        `json:"crew"`

	CertificatesByExpiry []models.CertificateRecord `json:"certificatesByExpiry"`
	MaintenanceByUrgency []models.MaintenanceTask   `json:"maintenanceByUrgency"`
	FuelEvents           []models.FuelEvent         `json:"fuelEvents"`
	CrewRoster           []models.CrewMember        `json:"crewRoster"`

	Alerts   []AlertItem         `json:"alerts"`
	Health   ProjectHealth       `json:"health"`
	Vessels  []VesselOverviewRow `json:"vessels"`
	Overview OverviewKpis        `json:"overview"`
}

// ComputeProjectSnapshot derives the dashboard for records as of now. It only
// reads records; every slice in the result is freshly allocated.
func ComputeProjectSnapshot(records *models.ProjectRecords, now time.Time, opts SnapshotOptions) ProjectSnapshot {
	if records == nil {
		records = &models.ProjectRecords{}
	}
	h := At(now).WithDueSoon(opts.DueSoon)
	inScope := InScopeVessels(records)

	certStats := CertificateStatsOf(records.Certificates)
	mntStats := MaintenanceStatsOf(records.Maintenance, h)
	fuelStats := FuelStatsOf(records.Fuel)
	crewStats := CrewStatsOf(records.Crew, inScope, opts.TopVessels)

	byExpiry := SortCertificatesByExpiry(records.Certificates)

	return ProjectSnapshot{
		PassId:     uuid.NewString(),
		ProjectId:  records.ProjectId,
		ComputedAt: now,

		Certificates: certStats,
		Maintenance:  mntStats,
		Fuel:         fuelStats,
		Crew:         crewStats,

		CertificatesByExpiry: byExpiry,
		MaintenanceByUrgency: SortMaintenanceByUrgency(records.Maintenance, now),
		FuelEvents:           FuelList(records.Fuel, ListFilterAll, FuelSortDateDesc),
		CrewRoster:           CrewList(records.Crew),

		Alerts:   AlertFeedOf(records.Certificates, records.Maintenance, h),
		Health:   ComposeProjectHealth(HealthInputsOf(certStats, mntStats, crewStats)),
		Vessels:  VesselOverviewOf(inScope, records.VesselNames(), records.Certificates, records.Crew, fuelStats),
		Overview: OverviewKpisOf(inScope, certStats, byExpiry, crewStats, overviewListSize),
	}
}
