package database

import "wayfarer/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Follow{},
		&models.Journal{},
		&models.Media{},
		&models.Like{},
		&models.Comment{},
		&models.Share{},
	}
}
