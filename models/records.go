package models

import (
	"strings"
	"time"
)

// Records are read-only snapshots of what the fleet API owns. Nothing in this
// repo writes them back.

type Vessel struct {
	ID        string    `gorm:"primary_key;size:36" json:"id" validate:"required"`
	ProjectId string    `gorm:"index;size:36;not null" json:"projectId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Status    string    `gorm:"size:30" json:"status"`
	Imo       *string   `gorm:"size:20" json:"imo"`
	Flag      *string   `gorm:"size:60" json:"flag"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Vessel) TableName() string { return "vessels" }

type CertificateRecord struct {
	ID         string            `gorm:"primary_key;size:36" json:"id" validate:"required"`
	ProjectId  string            `gorm:"index;size:36;not null" json:"projectId"`
	VesselId   string            `gorm:"column:asset_id;index;size:36;not null" json:"assetId" validate:"required"`
	VesselName string            `gorm:"column:asset_name;size:255" json:"assetName"`
	Name       string            `gorm:"size:255;not null" json:"name"`
	Number     *string           `gorm:"size:100" json:"number"`
	Issuer     *string           `gorm:"size:255" json:"issuer"`
	IssueDate  *time.Time        `json:"issueDate"`
	ExpiryDate *time.Time        `gorm:"index" json:"expiryDate"`
	Status     CertificateStatus `gorm:"size:20;not null" json:"status" validate:"certificate_status"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"createdAt"`
}

func (CertificateRecord) TableName() string { return "certificates" }

type MaintenanceTask struct {
	ID          string              `gorm:"primary_key;size:36" json:"id" validate:"required"`
	ProjectId   string              `gorm:"index;size:36;not null" json:"projectId"`
	VesselId    string              `gorm:"column:asset_id;index;size:36;not null" json:"assetId" validate:"required"`
	VesselName  string              `gorm:"column:asset_name;size:255" json:"assetName"`
	Title       string              `gorm:"size:255;not null" json:"title"`
	Description *string             `gorm:"type:text" json:"description"`
	DueDate     *time.Time          `gorm:"index" json:"dueDate"`
	Status      MaintenanceStatus   `gorm:"size:20;not null" json:"status" validate:"maintenance_status"`
	Priority    MaintenancePriority `gorm:"size:20;not null" json:"priority" validate:"maintenance_priority"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"createdAt"`
}

func (MaintenanceTask) TableName() string { return "maintenance_tasks" }

type FuelEvent struct {
	ID        string        `gorm:"primary_key;size:36" json:"id" validate:"required"`
	ProjectId string        `gorm:"index;size:36;not null" json:"projectId"`
	VesselId  string        `gorm:"column:asset_id;index;size:36;not null" json:"assetId" validate:"required"`
	Date      *time.Time    `gorm:"index" json:"date"`
	EventType FuelEventType `gorm:"size:20;not null" json:"eventType" validate:"fuel_event_type"`
	FuelType  FuelType      `gorm:"size:20;not null" json:"fuelType" validate:"fuel_type"`
	// Quantity stays a decimal string end to end; the column is DECIMAL(18,3).
	Quantity  string    `gorm:"type:decimal(18,3);not null" json:"quantity" validate:"fuel_quantity"`
	Unit      FuelUnit  `gorm:"size:5;not null" json:"unit" validate:"fuel_unit"`
	Price     *string   `gorm:"type:decimal(18,4)" json:"price"`
	Currency  *string   `gorm:"size:3" json:"currency"`
	Location  *string   `gorm:"size:255" json:"location"`
	Note      *string   `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (FuelEvent) TableName() string { return "fuel_events" }

// MissingCommercialData reports events logged without a price or a location.
func (f FuelEvent) MissingCommercialData() bool {
	return isBlank(f.Price) || isBlank(f.Location)
}

type CrewMember struct {
	ID          string     `gorm:"primary_key;size:36" json:"id" validate:"required"`
	ProjectId   string     `gorm:"index;size:36;not null" json:"projectId"`
	VesselId    string     `gorm:"column:asset_id;index;size:36;not null" json:"assetId" validate:"required"`
	VesselName  string     `gorm:"column:asset_name;size:255" json:"assetName"`
	FullName    string     `gorm:"size:255;not null" json:"fullName"`
	Rank        *string    `gorm:"size:100" json:"rank"`
	Nationality *string    `gorm:"size:100" json:"nationality"`
	Status      CrewStatus `gorm:"size:20;not null" json:"status" validate:"crew_status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (CrewMember) TableName() string { return "crew_members" }

// ProjectRecords is every collection one project owns for a single
// computation pass.
type ProjectRecords struct {
	ProjectId    string              `json:"projectId"`
	Vessels      []Vessel            `json:"vessels" validate:"dive"`
	Certificates []CertificateRecord `json:"certificates" validate:"dive"`
	Maintenance  []MaintenanceTask   `json:"maintenance" validate:"dive"`
	Fuel         []FuelEvent         `json:"fuel" validate:"dive"`
	Crew         []CrewMember        `json:"crew" validate:"dive"`
}

// VesselNames maps vessel id to display name from the roster, falling back to
// names carried on the records themselves.
func (p *ProjectRecords) VesselNames() map[string]string {
	names := make(map[string]string)
	for _, v := range p.Vessels {
		names[v.ID] = v.Name
	}
	for _, c := range p.Certificates {
		if _, ok := names[c.VesselId]; !ok && c.VesselName != "" {
			names[c.VesselId] = c.VesselName
		}
	}
	for _, m := range p.Crew {
		if _, ok := names[m.VesselId]; !ok && m.VesselName != "" {
			names[m.VesselId] = m.VesselName
		}
	}
	for _, m := range p.Maintenance {
		if _, ok := names[m.VesselId]; !ok && m.VesselName != "" {
			names[m.VesselId] = m.VesselName
		}
	}
	return names
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
