package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shreyash398/Green-World/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Milestone{},
		&models.Registration{},
		&models.Certificate{},
		&models.ProjectPhoto{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
