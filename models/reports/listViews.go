package reports

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmdatafocus/fleetops_backend/ledger"
	"github.com/mmdatafocus/fleetops_backend/models"
)

// ListFilterAll disables the status/type filter of a list view.
const ListFilterAll = "ALL"

type CertificateSort string

const (
	CertificateSortExpiryAsc  CertificateSort = "EXPIRY_ASC"
	CertificateSortExpiryDesc CertificateSort = "EXPIRY_DESC"
	CertificateSortNameAsc    CertificateSort = "NAME_ASC"
)

type MaintenanceSort string

const (
	MaintenanceSortDueAsc   MaintenanceSort = "DUE_ASC"
	MaintenanceSortDueDesc  MaintenanceSort = "DUE_DESC"
	MaintenanceSortTitleAsc MaintenanceSort = "TITLE_ASC"
)

type FuelSort string

const (
	FuelSortDateDesc FuelSort = "DATE_DESC"
	FuelSortDateAsc  FuelSort = "DATE_ASC"
	FuelSortQtyDesc  FuelSort = "QTY_DESC"
)

func newNameCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// compareInstantsDesc orders later instants first and keeps nil last.
func compareInstantsDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return b.Compare(*a)
}

func matchesFilter(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.EqualFold(filter, ListFilterAll) || filter == value
}

// CertificateList filters by status and sorts by the given key. Unknown keys
// fall back to EXPIRY_ASC.
func CertificateList(certs []models.CertificateRecord, status string, by CertificateSort) []models.CertificateRecord {
	out := make([]models.CertificateRecord, 0, len(certs))
	for _, c := range certs {
		if matchesFilter(status, string(c.Status)) {
			out = append(out, c)
		}
	}

	switch by {
	case CertificateSortExpiryDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return compareInstantsDesc(out[i].ExpiryDate, out[j].ExpiryDate) < 0
		})
	case CertificateSortNameAsc:
		col := newNameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return compareInstants(out[i].ExpiryDate, out[j].ExpiryDate) < 0
		})
	}
	return out
}

func MaintenanceList(tasks []models.MaintenanceTask, status string, by MaintenanceSort) []models.MaintenanceTask {
	out := make([]models.MaintenanceTask, 0, len(tasks))
	for _, m := range tasks {
		if matchesFilter(status, string(m.Status)) {
			out = append(out, m)
		}
	}

	switch by {
	case MaintenanceSortDueDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return compareInstantsDesc(out[i].DueDate, out[j].DueDate) < 0
		})
	case MaintenanceSortTitleAsc:
		col := newNameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Title, out[j].Title) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return compareInstants(out[i].DueDate, out[j].DueDate) < 0
		})
	}
	return out
}

func FuelList(events []models.FuelEvent, eventType string, by FuelSort) []models.FuelEvent {
	out := make([]models.FuelEvent, 0, len(events))
	for _, f := range events {
		if matchesFilter(eventType, string(f.EventType)) {
			out = append(out, f)
		}
	}

	switch by {
	case FuelSortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return compareInstants(out[i].Date, out[j].Date) < 0
		})
	case FuelSortQtyDesc:
		qty := make(map[string]ledger.Quantity, len(out))
		for _, f := range out {
			qty[f.Quantity] = ledger.ParseQuantity(f.Quantity)
		}
		sort.SliceStable(out, func(i, j int) bool {
			return qty[out[i].Quantity].Cmp(qty[out[j].Quantity]) > 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return compareInstantsDesc(out[i].Date, out[j].Date) < 0
		})
	}
	return out
}

// CrewList puts active crew first, then orders by full name.
func CrewList(crew []models.CrewMember) []models.CrewMember {
	out := make([]models.CrewMember, len(crew))
	copy(out, crew)
	col := newNameCollator()
	sort.SliceStable(out, func(i, j int) bool {
		ai := out[i].Status == models.CrewStatusActive
		aj := out[j].Status == models.CrewStatusActive
		if ai != aj {
			return ai
		}
		return col.CompareString(out[i].FullName, out[j].FullName) < 0
	})
	return out
}
