package reports

import (
	"time"

	"github.com/mmdatafocus/fleetops_backend/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func daysFromNow(days int) *time.Time {
	t := testNow.AddDate(0, 0, days)
	return &t
}

func strPtr(s string) *string { return &s }

func cert(id, vessel string, status models.CertificateStatus, expiry *time.Time) models.CertificateRecord {
	return models.CertificateRecord{
		ID:         id,
		VesselId:   vessel,
		VesselName: "MV " + vessel,
		Name:       "Certificate " + id,
		Status:     status,
		ExpiryDate: expiry,
	}
}

func task(id, vessel string, status models.MaintenanceStatus, due *time.Time) models.MaintenanceTask {
	return models.MaintenanceTask{
		ID:         id,
		VesselId:   vessel,
		VesselName: "MV " + vessel,
		Title:      "Task " + id,
		Status:     status,
		Priority:   models.MaintenancePriorityMedium,
		DueDate:    due,
	}
}

func fuel(id, vessel string, kind models.FuelEventType, qty string, unit models.FuelUnit) models.FuelEvent {
	return models.FuelEvent{
		ID:        id,
		VesselId:  vessel,
		EventType: kind,
		FuelType:  models.FuelTypeMGO,
		Quantity:  qty,
		Unit:      unit,
		Price:     strPtr("720.50"),
		Location:  strPtr("Singapore"),
	}
}

func crewMember(id, vessel, name string, status models.CrewStatus) models.CrewMember {
	return models.CrewMember{
		ID:         id,
		VesselId:   vessel,
		VesselName: "MV " + vessel,
		FullName:   name,
		Status:     status,
	}
}
