package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConversationState is the persisted state of one intake cycle.
// The set is closed: only states a handler can transition into exist.
type ConversationState string

const (
	StateStart             ConversationState = "START"
	StateWaitingForInfo    ConversationState = "WAITING_FOR_INFO"
	StateWaitingForPayment ConversationState = "WAITING_FOR_PAYMENT"
	StatePaid              ConversationState = "PAID"
	StateQuestions         ConversationState = "QUESTIONS"
)

// Conversation represents one in-progress or completed intake cycle
// for a client. The schema enforces one cycle per client; the most
// recently created row is the active one.
type Conversation struct {
	ID       uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	State    ConversationState `gorm:"type:text;not null;default:'START'" json:"state"`
	Context  datatypes.JSON    `gorm:"type:jsonb;default:'{}'" json:"context"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Client Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (Conversation) TableName() string {
	return "conversations"
}

// BeforeCreate sets UUID before creating
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Profile decodes the conversation context into a typed profile draft
func (c *Conversation) Profile() (*Profile, error) {
	return ProfileFromJSON(c.Context)
}
