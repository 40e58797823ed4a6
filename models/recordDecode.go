package models

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/mmdatafocus/fleetops_backend/utils"
)

var decimalPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// The fleet API sends dates as ISO strings (or null). Anything we cannot parse
// is kept as nil so it sorts last and never reads as due.

func (c *CertificateRecord) UnmarshalJSON(b []byte) error {
	type alias CertificateRecord
	aux := struct {
		*alias
		IssueDate  *string `json:"issueDate"`
		ExpiryDate *string `json:"expiryDate"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.IssueDate = utils.ParseTimestamp(aux.IssueDate)
	c.ExpiryDate = utils.ParseTimestamp(aux.ExpiryDate)
	return nil
}

func (m *MaintenanceTask) UnmarshalJSON(b []byte) error {
	type alias MaintenanceTask
	aux := struct {
		*alias
		DueDate *string   `json:"dueDate"`
		Asset   *assetRef `json:"asset"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	m.DueDate = utils.ParseTimestamp(aux.DueDate)
	if m.VesselName == "" && aux.Asset != nil {
		m.VesselName = aux.Asset.Name
	}
	return nil
}

func (f *FuelEvent) UnmarshalJSON(b []byte) error {
	type alias FuelEvent
	aux := struct {
		*alias
		Date *string `json:"date"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	f.Date = utils.ParseTimestamp(aux.Date)
	return nil
}

func (m *CrewMember) UnmarshalJSON(b []byte) error {
	type alias CrewMember
	aux := struct {
		*alias
		Asset *assetRef `json:"asset"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if m.VesselName == "" && aux.Asset != nil {
		m.VesselName = aux.Asset.Name
	}
	return nil
}

// assetRef is the nested asset object some endpoints embed in each record.
type assetRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DecodeProjectRecords reads the fleet API payload for one project.
func DecodeProjectRecords(r io.Reader, strict bool) (*ProjectRecords, error) {
	var records ProjectRecords
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode project records: %w", err)
	}
	if err := ValidateProjectRecords(&records, strict); err != nil {
		return nil, err
	}
	return &records, nil
}

// ValidateProjectRecords checks ids are present. In strict mode it also
// rejects unknown tags and malformed quantities instead of letting the
// aggregators default-bucket them.
func ValidateProjectRecords(records *ProjectRecords, strict bool) error {
	if err := newRecordValidator(strict).Struct(records); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("%w: %v", utils.ErrorInvalidRecords, utils.ProcessValidationErrors(err))
		}
		return err
	}
	return nil
}

func newRecordValidator(strict bool) *validator.Validate {
	v := validator.New()
	tag := func(name string, ok func(fl validator.FieldLevel) bool) {
		v.RegisterValidation(name, func(fl validator.FieldLevel) bool {
			return !strict || ok(fl)
		})
	}
	tag("certificate_status", func(fl validator.FieldLevel) bool {
		return CertificateStatus(fl.Field().String()).IsValid()
	})
	tag("maintenance_status", func(fl validator.FieldLevel) bool {
		return MaintenanceStatus(fl.Field().String()).IsValid()
	})
	tag("maintenance_priority", func(fl validator.FieldLevel) bool {
		return MaintenancePriority(fl.Field().String()).IsValid()
	})
	tag("fuel_event_type", func(fl validator.FieldLevel) bool {
		return FuelEventType(fl.Field().String()).IsValid()
	})
	tag("fuel_type", func(fl validator.FieldLevel) bool {
		return FuelType(fl.Field().String()).IsValid()
	})
	tag("fuel_unit", func(fl validator.FieldLevel) bool {
		return FuelUnit(fl.Field().String()).IsValid()
	})
	tag("crew_status", func(fl validator.FieldLevel) bool {
		return CrewStatus(fl.Field().String()).IsValid()
	})
	tag("fuel_quantity", func(fl validator.FieldLevel) bool {
		return decimalPattern.MatchString(fl.Field().String())
	})
	return v
}
