package models

import (
	"errors"
	"io"
	"strconv"
)

type CertificateStatus string

const (
	CertificateStatusValid        CertificateStatus = "VALID"
	CertificateStatusExpiringSoon CertificateStatus = "EXPIRING_SOON"
	CertificateStatusExpired      CertificateStatus = "EXPIRED"
	CertificateStatusPending      CertificateStatus = "PENDING"
)

func (t CertificateStatus) IsValid() bool {
	switch t {
	case CertificateStatusValid, CertificateStatusExpiringSoon, CertificateStatusExpired, CertificateStatusPending:
		return true
	}
	return false
}

// convert enum to send response
func (t CertificateStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

// convert input to enum type
func (t *CertificateStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("certificate status must be string")
	}
	v := CertificateStatus(str)
	if !v.IsValid() {
		return errors.New("invalid certificate status")
	}
	*t = v
	return nil
}

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "OPEN"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusDone       MaintenanceStatus = "DONE"
)

func (t MaintenanceStatus) IsValid() bool {
	switch t {
	case MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusDone:
		return true
	}
	return false
}

func (t MaintenanceStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *MaintenanceStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("maintenance status must be string")
	}
	v := MaintenanceStatus(str)
	if !v.IsValid() {
		return errors.New("invalid maintenance status")
	}
	*t = v
	return nil
}

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "LOW"
	MaintenancePriorityMedium MaintenancePriority = "MEDIUM"
	MaintenancePriorityHigh   MaintenancePriority = "HIGH"
)

func (t MaintenancePriority) IsValid() bool {
	switch t {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh:
		return true
	}
	return false
}

func (t MaintenancePriority) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *MaintenancePriority) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("maintenance priority must be string")
	}
	v := MaintenancePriority(str)
	if !v.IsValid() {
		return errors.New("invalid maintenance priority")
	}
	*t = v
	return nil
}

type FuelEventType string

const (
	FuelEventTypeBunkered    FuelEventType = "BUNKERED"
	FuelEventTypeConsumed    FuelEventType = "CONSUMED"
	FuelEventTypeTransferred FuelEventType = "TRANSFERRED"
	FuelEventTypeAdjustment  FuelEventType = "ADJUSTMENT"
)

func (t FuelEventType) IsValid() bool {
	switch t {
	case FuelEventTypeBunkered, FuelEventTypeConsumed, FuelEventTypeTransferred, FuelEventTypeAdjustment:
		return true
	}
	return false
}

func (t FuelEventType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *FuelEventType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("fuel event type must be string")
	}
	v := FuelEventType(str)
	if !v.IsValid() {
		return errors.New("invalid fuel event type")
	}
	*t = v
	return nil
}

type FuelType string

const (
	FuelTypeMGO   FuelType = "MGO"
	FuelTypeVLSFO FuelType = "VLSFO"
	FuelTypeHSFO  FuelType = "HSFO"
	FuelTypeLNG   FuelType = "LNG"
	FuelTypeOther FuelType = "OTHER"
)

// FuelTypes lists every fuel type in display order.
var FuelTypes = []FuelType{FuelTypeMGO, FuelTypeVLSFO, FuelTypeHSFO, FuelTypeLNG, FuelTypeOther}

func (t FuelType) IsValid() bool {
	switch t {
	case FuelTypeMGO, FuelTypeVLSFO, FuelTypeHSFO, FuelTypeLNG, FuelTypeOther:
		return true
	}
	return false
}

func (t FuelType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *FuelType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("fuel type must be string")
	}
	v := FuelType(str)
	if !v.IsValid() {
		return errors.New("invalid fuel type")
	}
	*t = v
	return nil
}

type FuelUnit string

const (
	FuelUnitLitre     FuelUnit = "L"
	FuelUnitMetricTon FuelUnit = "MT"
)

func (t FuelUnit) IsValid() bool {
	return t == FuelUnitLitre || t == FuelUnitMetricTon
}

func (t FuelUnit) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *FuelUnit) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("fuel unit must be string")
	}
	v := FuelUnit(str)
	if !v.IsValid() {
		return errors.New("invalid fuel unit")
	}
	*t = v
	return nil
}

type CrewStatus string

const (
	CrewStatusActive   CrewStatus = "ACTIVE"
	CrewStatusInactive CrewStatus = "INACTIVE"
)

func (t CrewStatus) IsValid() bool {
	return t == CrewStatusActive || t == CrewStatusInactive
}

func (t CrewStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *CrewStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("crew status must be string")
	}
	v := CrewStatus(str)
	if !v.IsValid() {
		return errors.New("invalid crew status")
	}
	*t = v
	return nil
}
