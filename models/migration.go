package models

import (
	"github.com/mmdatafocus/fleetops_backend/config"
	"github.com/sirupsen/logrus"
)

func MigrateTable() {
	db := config.GetDB()
	logger := config.GetLogger()

	err := db.AutoMigrate(
		&Vessel{},
		&CertificateRecord{},
		&MaintenanceTask{},
		&FuelEvent{},
		&CrewMember{},
	)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"field": "migrations",
		}).Fatal(err.Error())
	}
}
