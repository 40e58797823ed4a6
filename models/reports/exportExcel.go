package reports

import (
	"io"
	"time"

	"github.com/mmdatafocus/fleetops_backend/ledger"
	"github.com/mmdatafocus/fleetops_backend/models"
	"github.com/mmdatafocus/fleetops_backend/utils"
	"github.com/xuri/excelize/v2"
)

const excelDateLayout = "2006-01-02"

// WriteSnapshotExcel renders a computed dashboard as a workbook with one sheet
// per section.
func WriteSnapshotExcel(w io.Writer, snap ProjectSnapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"Health", healthRows(snap)},
		{"Certificates", certificateRows(snap)},
		{"Maintenance", maintenanceRows(snap)},
		{"Fuel", fuelRows(snap)},
		{"Crew", crewRows(snap)},
		{"Alerts", alertRows(snap)},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return err
		}
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func excelDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(excelDateLayout)
}

// quantityCell writes ledger quantities as numbers so the sheet can sum them.
func quantityCell(s string) float64 {
	return ledger.ParseQuantity(s).Decimal().InexactFloat64()
}

func healthRows(snap ProjectSnapshot) [][]interface{} {
	rows := [][]interface{}{
		{"Project", snap.ProjectId},
		{"Computed At", snap.ComputedAt.Format(time.RFC3339)},
		{"Status", string(snap.Health.Status)},
		{},
		{"Reasons"},
	}
	for _, reason := range snap.Health.Reasons {
		rows = append(rows, []interface{}{reason})
	}
	return rows
}

func certificateRows(snap ProjectSnapshot) [][]interface{} {
	s := snap.Certificates
	rows := [][]interface{}{
		{"Total", "Valid", "Expiring Soon", "Expired", "Pending", "Critical"},
		{s.Total, s.Valid, s.ExpiringSoon, s.Expired, s.Pending, s.Critical},
		{},
		{"Vessel", "Certificate", "Number", "Expiry Date", "Status"},
	}
	for _, c := range snap.CertificatesByExpiry {
		rows = append(rows, []interface{}{
			vesselLabel(c.VesselName, c.VesselId),
			c.Name,
			utils.DereferencePtr(c.Number, ""),
			excelDate(c.ExpiryDate),
			string(c.Status),
		})
	}
	return rows
}

func maintenanceRows(snap ProjectSnapshot) [][]interface{} {
	s := snap.Maintenance
	rows := [][]interface{}{
		{"Total", "Open", "In Progress", "Done", "High Priority Open", "Overdue", "Due Soon"},
		{s.Total, s.Open, s.InProgress, s.Done, s.HighPriorityOpen, s.Overdue, s.DueSoon},
		{},
		{"Vessel", "Task", "Due Date", "Status", "Priority", "Overdue"},
	}
	for _, m := range snap.MaintenanceByUrgency {
		rows = append(rows, []interface{}{
			vesselLabel(m.VesselName, m.VesselId),
			m.Title,
			excelDate(m.DueDate),
			string(m.Status),
			string(m.Priority),
			IsOverdue(m, snap.ComputedAt),
		})
	}
	return rows
}

func fuelRows(snap ProjectSnapshot) [][]interface{} {
	s := snap.Fuel
	rows := [][]interface{}{
		{"Events", "Bunkered", "Consumed", "Transferred", "Adjustments", "Critical"},
		{s.Total, s.Bunkered, s.Consumed, s.Transferred, s.Adjustments, s.Critical},
		{},
		{"Fuel Type", "Unit", "Bunkered Qty", "Consumed Qty", "Net Qty", "Events"},
	}
	for _, ft := range models.FuelTypes {
		sum := s.SummaryByFuelType[ft]
		rows = append(rows, []interface{}{string(ft), string(sum.Unit), quantityCell(sum.BunkeredQty), quantityCell(sum.ConsumedQty), quantityCell(sum.NetQty), sum.Events})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Vessel", "Unit", "Net"})
	for _, v := range snap.Vessels {
		if balance, ok := s.BalancesByVessel[v.VesselId]; ok {
			rows = append(rows, []interface{}{v.VesselName, string(balance.Unit), quantityCell(balance.Net)})
		}
	}
	return rows
}

func crewRows(snap ProjectSnapshot) [][]interface{} {
	s := snap.Crew
	rows := [][]interface{}{
		{"Total", "Active", "Inactive", "Vessels With Crew", "Vessels Without Active Crew"},
		{s.Total, s.Active, s.Inactive, s.VesselsWithCrew, s.VesselsWithoutActiveCrew},
		{},
		{"Vessel", "Active Crew"},
	}
	for _, row := range s.CrewByVessel {
		rows = append(rows, []interface{}{vesselLabel(row.VesselName, row.VesselId), row.ActiveCount})
	}
	return rows
}

func alertRows(snap ProjectSnapshot) [][]interface{} {
	rows := [][]interface{}{{"Severity", "Type", "Title", "Vessel", "Date"}}
	for _, a := range snap.Alerts {
		rows = append(rows, []interface{}{string(a.Severity), string(a.Domain), a.Title, a.Subtitle, excelDate(a.Date)})
	}
	return rows
}
