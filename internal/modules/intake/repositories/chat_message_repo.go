package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
)

type ChatMessageRepo interface {
	// Append logs one exchanged message. The transcript is append-only.
	Append(clientID uuid.UUID, role, content string) error

	// ListByClient returns the client's transcript in chronological order.
	ListByClient(clientID uuid.UUID) ([]models.ChatMessage, error)
}

type chatMessageRepo struct {
	db *gorm.DB
}

func NewChatMessageRepo(db *gorm.DB) ChatMessageRepo {
	return &chatMessageRepo{db: db}
}

func (r *chatMessageRepo) Append(clientID uuid.UUID, role, content string) error {
	msg := models.ChatMessage{
		ClientID: clientID,
		Role:     role,
		Content:  content,
	}
	return r.db.Create(&msg).Error
}

func (r *chatMessageRepo) ListByClient(clientID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
