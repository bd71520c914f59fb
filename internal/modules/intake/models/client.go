package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is one prospective customer, keyed by phone number.
// Created lazily on first inbound message from an unseen number.
type Client struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Phone string    `gorm:"type:text;not null;uniqueIndex" json:"phone"`

	// Profile fields, collected during intake. All optional free text:
	// whatever the client typed is stored as-is.
	Name                string `gorm:"type:text" json:"name"`
	Age                 string `gorm:"type:text" json:"age"`
	Gender              string `gorm:"type:text" json:"gender"`
	Height              string `gorm:"type:text" json:"height"`
	Weight              string `gorm:"type:text" json:"weight"`
	Goal                string `gorm:"type:text" json:"goal"`
	Experience          string `gorm:"type:text" json:"experience"`
	AvailableDays       string `gorm:"type:text" json:"available_days"`
	HealthConditions    string `gorm:"type:text" json:"health_conditions"`
	ExercisePreferences string `gorm:"type:text" json:"exercise_preferences"`
	DietaryRestrictions string `gorm:"type:text" json:"dietary_restrictions"`
	Equipment           string `gorm:"type:text" json:"equipment"`
	Motivation          string `gorm:"type:text" json:"motivation"`

	Paid      bool   `gorm:"default:false" json:"paid"`
	PlanURL   string `gorm:"type:text" json:"plan_url"`
	PlanText  string `gorm:"type:text" json:"plan_text"`
	AIEnabled bool   `gorm:"default:true" json:"ai_enabled"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Client) TableName() string {
	return "clients"
}

// BeforeCreate sets UUID before creating
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
