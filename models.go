package main

import (
	"time"
)

// --- Users & auth ---

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// --- Quiz reference data ---

type QuizQuestion struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"size:255;not null" json:"question"`
	Category string `gorm:"size:50;not null" json:"category"` // medical, engineering, technology, arts, commerce
	Subject  string `gorm:"size:100" json:"subject"`
}

// --- Quiz results & profiles ---

type QuizResult struct {
	ID                uint      `gorm:"primaryKey"`
	UserID            uint      `gorm:"index;not null"`
	ScoresRaw         string    `gorm:"not null"` // JSON: {"engineering":12,...}
	AnswersRaw        string    `gorm:"not null"` // JSON: [{"category":"arts","answer":3},...]
	RecommendedStream string    `gorm:"size:100;not null"`
	CreatedAt         time.Time `gorm:"not null"`
}

type UserProfile struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"uniqueIndex;not null"`
	PreferredStream  string `gorm:"size:100"`
	InterestsRaw     string `gorm:"default:'[]'"` // JSON array of strings
	CompletedQuizzes int    `gorm:"not null;default:0"`
	CreatedAt        time.Time
}

// --- Directory data (colleges & careers) ---

type College struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:100;not null" json:"name"`
	Location      string `gorm:"size:100" json:"location"`
	Website       string `json:"website"`
	CollegeType   string `gorm:"size:50;default:'Government'" json:"college_type"`
	Fees          string `gorm:"size:100" json:"fees"`
	FacilitiesRaw string `gorm:"default:'[]'" json:"-"` // JSON array of strings
	CutoffMarks   string `gorm:"size:100" json:"cutoff_marks"`
}

type Career struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:100;not null" json:"title"`
	Description     string `json:"description"`
	Demand          int    `gorm:"default:0" json:"demand"`
	SkillsRaw       string `gorm:"default:'[]'" json:"-"` // JSON array of strings
	SalaryRange     string `gorm:"size:100" json:"salary_range"`
	GrowthProspects string `json:"growth_prospects"`
}
