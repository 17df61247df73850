package main

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func OpenDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&QuizQuestion{},
		&QuizResult{},
		&UserProfile{},
		&College{},
		&Career{},
	)
}

func IsQuestionTableEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&QuizQuestion{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func IsCatalogEmpty(db *gorm.DB) (bool, error) {
	var colleges, careers int64
	if err := db.Model(&College{}).Count(&colleges).Error; err != nil {
		return false, err
	}
	if err := db.Model(&Career{}).Count(&careers).Error; err != nil {
		return false, err
	}
	return colleges == 0 && careers == 0, nil
}
