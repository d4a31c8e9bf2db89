package db

import "gorm.io/gorm"

var DB *gorm.DB

// Init points the package at an opened connection (see pkg/database.Open).
func Init(conn *gorm.DB) {
	DB = conn
}
