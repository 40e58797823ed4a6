package reports

import (
	"github.com/mmdatafocus/fleetops_backend/ledger"
	"github.com/mmdatafocus/fleetops_backend/models"
)

type VesselFuelBalance struct {
	Unit models.FuelUnit `json:"unit"`
	Net  string          `json:"net"`
}

type FuelTypeSummary struct {
	Unit        models.FuelUnit `json:"unit"`
	BunkeredQty string          `json:"bunkeredQty"`
	ConsumedQty string          `json:"consumedQty"`
	NetQty      string          `json:"netQty"`
	Events      int             `json:"events"`
}

type FuelStats struct {
	Total       int `json:"total"`
	Bunkered    int `json:"bunkered"`
	Consumed    int `json:"consumed"`
	Transferred int `json:"transferred"`
	Adjustments int `json:"adjustments"`

	// Quantities below only cover events logged in Unit.
	Unit        models.FuelUnit `json:"unit"`
	BunkeredQty string          `json:"bunkeredQty"`
	ConsumedQty string          `json:"consumedQty"`

	// Critical counts events missing a price or a location.
	Critical int `json:"critical"`

	BalancesByVessel  map[string]VesselFuelBalance          `json:"balancesByVessel"`
	SummaryByFuelType map[models.FuelType]FuelTypeSummary `json:"summaryByFuelType"`
}

// DominantUnit picks the unit most events were logged in. MT wins ties,
// including the empty case.
func DominantUnit(events []models.FuelEvent) models.FuelUnit {
	var litres, tons int
	for _, f := range events {
		switch f.Unit {
		case models.FuelUnitLitre:
			litres++
		case models.FuelUnitMetricTon:
			tons++
		}
	}
	if litres > tons {
		return models.FuelUnitLitre
	}
	return models.FuelUnitMetricTon
}

// fuelTally accumulates bunkered and consumed quantities for one axis.
type fuelTally struct {
	bunkered ledger.Quantity
	consumed ledger.Quantity
	events   int
}

func (t *fuelTally) record(f models.FuelEvent) {
	t.events++
	switch f.EventType {
	case models.FuelEventTypeBunkered:
		t.bunkered = t.bunkered.Add(ledger.ParseQuantity(f.Quantity))
	case models.FuelEventTypeConsumed:
		t.consumed = t.consumed.Add(ledger.ParseQuantity(f.Quantity))
	}
}

func (t *fuelTally) net() ledger.Quantity {
	return t.bunkered.Sub(t.consumed)
}

// FuelStatsOf builds the fuel ledger for a project. Totals, vessel balances
// and fuel-type summaries all skip events not logged in the dominant unit;
// there is no conversion between litres and tons.
func FuelStatsOf(events []models.FuelEvent) FuelStats {
	unit := DominantUnit(events)
	stats := FuelStats{
		Total:             len(events),
		Unit:              unit,
		BalancesByVessel:  make(map[string]VesselFuelBalance),
		SummaryByFuelType: make(map[models.FuelType]FuelTypeSummary, len(models.FuelTypes)),
	}

	var global fuelTally
	byVessel := make(map[string]*fuelTally)
	byFuelType := make(map[models.FuelType]*fuelTally, len(models.FuelTypes))
	for _, ft := range models.FuelTypes {
		byFuelType[ft] = &fuelTally{}
	}

	for _, f := range events {
		switch f.EventType {
		case models.FuelEventTypeBunkered:
			stats.Bunkered++
		case models.FuelEventTypeConsumed:
			stats.Consumed++
		case models.FuelEventTypeTransferred:
			stats.Transferred++
		case models.FuelEventTypeAdjustment:
			stats.Adjustments++
		}
		if f.MissingCommercialData() {
			stats.Critical++
		}

		if f.Unit != unit {
			continue
		}

		global.record(f)

		vt, ok := byVessel[f.VesselId]
		if !ok {
			vt = &fuelTally{}
			byVessel[f.VesselId] = vt
		}
		vt.record(f)

		if ft, ok := byFuelType[f.FuelType]; ok {
			ft.record(f)
		}
	}

	stats.BunkeredQty = global.bunkered.String()
	stats.ConsumedQty = global.consumed.String()

	for vesselId, t := range byVessel {
		stats.BalancesByVessel[vesselId] = VesselFuelBalance{Unit: unit, Net: t.net().String()}
	}
	for ft, t := range byFuelType {
		stats.SummaryByFuelType[ft] = FuelTypeSummary{
			Unit:        unit,
			BunkeredQty: t.bunkered.String(),
			ConsumedQty: t.consumed.String(),
			NetQty:      t.net().String(),
			Events:      t.events,
		}
	}
	return stats
}
