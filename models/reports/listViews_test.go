package reports

import (
	"testing"

	"github.com/mmdatafocus/fleetops_backend/models"
)

func idsOf[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func sameIds(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", label, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: expected %v, got %v", label, want, got)
		}
	}
}

func TestCertificateList(t *testing.T) {
	certs := []models.CertificateRecord{
		cert("a", "V1", models.CertificateStatusValid, daysFromNow(20)),
		cert("b", "V1", models.CertificateStatusExpired, nil),
		cert("c", "V1", models.CertificateStatusValid, daysFromNow(5)),
	}
	certs[0].Name = "load line"
	certs[1].Name = "Safety Equipment"
	certs[2].Name = "IOPP"
	id := func(c models.CertificateRecord) string { return c.ID }

	sameIds(t, "expiry asc", idsOf(CertificateList(certs, ListFilterAll, CertificateSortExpiryAsc), id), []string{"c", "a", "b"})
	sameIds(t, "expiry desc", idsOf(CertificateList(certs, "", CertificateSortExpiryDesc), id), []string{"a", "c", "b"})
	sameIds(t, "name asc", idsOf(CertificateList(certs, ListFilterAll, CertificateSortNameAsc), id), []string{"c", "a", "b"})
	sameIds(t, "valid only", idsOf(CertificateList(certs, "VALID", ""), id), []string{"c", "a"})
}

func TestMaintenanceList(t *testing.T) {
	tasks := []models.MaintenanceTask{
		task("a", "V1", models.MaintenanceStatusOpen, daysFromNow(3)),
		task("b", "V1", models.MaintenanceStatusDone, daysFromNow(-3)),
		task("c", "V1", models.MaintenanceStatusOpen, nil),
	}
	tasks[0].Title = "overhaul"
	tasks[1].Title = "Anchor check"
	tasks[2].Title = "Boiler survey"
	id := func(m models.MaintenanceTask) string { return m.ID }

	sameIds(t, "due asc", idsOf(MaintenanceList(tasks, ListFilterAll, MaintenanceSortDueAsc), id), []string{"b", "a", "c"})
	sameIds(t, "due desc", idsOf(MaintenanceList(tasks, ListFilterAll, MaintenanceSortDueDesc), id), []string{"a", "b", "c"})
	sameIds(t, "title asc", idsOf(MaintenanceList(tasks, ListFilterAll, MaintenanceSortTitleAsc), id), []string{"b", "c", "a"})
	sameIds(t, "open only", idsOf(MaintenanceList(tasks, "OPEN", MaintenanceSortDueAsc), id), []string{"a", "c"})
}

func TestFuelList(t *testing.T) {
	events := []models.FuelEvent{
		fuel("a", "V1", models.FuelEventTypeBunkered, "9.5", models.FuelUnitMetricTon),
		fuel("b", "V1", models.FuelEventTypeConsumed, "100", models.FuelUnitMetricTon),
		fuel("c", "V1", models.FuelEventTypeBunkered, "10.25", models.FuelUnitMetricTon),
	}
	events[0].Date = daysFromNow(-1)
	events[1].Date = daysFromNow(-5)
	id := func(f models.FuelEvent) string { return f.ID }

	sameIds(t, "date desc", idsOf(FuelList(events, ListFilterAll, FuelSortDateDesc), id), []string{"a", "b", "c"})
	sameIds(t, "date asc", idsOf(FuelList(events, ListFilterAll, FuelSortDateAsc), id), []string{"b", "a", "c"})
	sameIds(t, "qty desc", idsOf(FuelList(events, ListFilterAll, FuelSortQtyDesc), id), []string{"b", "c", "a"})
	sameIds(t, "bunkered only", idsOf(FuelList(events, "BUNKERED", ""), id), []string{"a", "c"})
}

func TestCrewList(t *testing.T) {
	crew := []models.CrewMember{
		crewMember("1", "V1", "zaw", models.CrewStatusInactive),
		crewMember("2", "V1", "Min", models.CrewStatusActive),
		crewMember("3", "V1", "aung", models.CrewStatusActive),
	}
	sameIds(t, "crew", idsOf(CrewList(crew), func(m models.CrewMember) string { return m.ID }), []string{"3", "2", "1"})
}
