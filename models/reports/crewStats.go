package reports

import (
	"sort"

	"github.com/mmdatafocus/fleetops_backend/models"
	"github.com/mmdatafocus/fleetops_backend/utils"
)

type VesselCrewCount struct {
	VesselId    string `json:"assetId"`
	VesselName  string `json:"assetName"`
	ActiveCount int    `json:"activeCount"`
}

type CrewStats struct {
	Total                    int               `json:"total"`
	Active                   int               `json:"active"`
	Inactive                 int               `json:"inactive"`
	VesselsWithoutActiveCrew int               `json:"vesselsWithoutActiveCrew"`
	VesselsWithCrew          int               `json:"vesselsWithCrew"`
	CrewByVessel             []VesselCrewCount `json:"crewByVessel"`
}

// InScopeVessels is the vessel set crew coverage is judged against: the
// project's roster when it has one, otherwise every vessel a certificate
// points at.
func InScopeVessels(records *models.ProjectRecords) []string {
	ids := make([]string, 0, len(records.Vessels))
	if len(records.Vessels) > 0 {
		for _, v := range records.Vessels {
			ids = append(ids, v.ID)
		}
	} else {
		for _, c := range records.Certificates {
			ids = append(ids, c.VesselId)
		}
	}
	return utils.UniqueSlice(ids)
}

// CrewStatsOf counts crew and ranks vessels by active headcount. topN <= 0
// keeps every vessel.
func CrewStatsOf(crew []models.CrewMember, inScope []string, topN int) CrewStats {
	stats := CrewStats{Total: len(crew)}

	byVessel := make(map[string]*VesselCrewCount)
	var order []*VesselCrewCount

	for _, m := range crew {
		row, ok := byVessel[m.VesselId]
		if !ok {
			row = &VesselCrewCount{VesselId: m.VesselId, VesselName: m.VesselName}
			byVessel[m.VesselId] = row
			order = append(order, row)
		}
		switch m.Status {
		case models.CrewStatusActive:
			stats.Active++
			row.ActiveCount++
		case models.CrewStatusInactive:
			stats.Inactive++
		}
	}
	stats.VesselsWithCrew = len(order)

	for _, id := range utils.UniqueSlice(inScope) {
		if row, ok := byVessel[id]; !ok || row.ActiveCount == 0 {
			stats.VesselsWithoutActiveCrew++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].ActiveCount > order[j].ActiveCount
	})
	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}
	stats.CrewByVessel = make([]VesselCrewCount, 0, len(order))
	for _, row := range order {
		stats.CrewByVessel = append(stats.CrewByVessel, *row)
	}
	return stats
}
