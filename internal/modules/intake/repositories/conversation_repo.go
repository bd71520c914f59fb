package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
)

type ConversationRepo interface {
	Create(conv *models.Conversation) error

	// LatestByClient returns the most recently created conversation for
	// the client, or nil when none exists. That row is the active one.
	LatestByClient(clientID uuid.UUID) (*models.Conversation, error)

	UpdateState(id uuid.UUID, state models.ConversationState) error
	UpdateContext(id uuid.UUID, context datatypes.JSON) error

	// ListStaleInState returns conversations sitting in the given state
	// with no activity since the cutoff. Used by the reminder sweep.
	ListStaleInState(state models.ConversationState, cutoff time.Time, limit int) ([]models.Conversation, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Create(conv *models.Conversation) error {
	return r.db.Create(conv).Error
}

func (r *conversationRepo) LatestByClient(clientID uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Where("client_id = ?", clientID).
		Order("created_at DESC").
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepo) UpdateState(id uuid.UUID, state models.ConversationState) error {
	return r.db.Model(&models.Conversation{}).
		Where("id = ?", id).
		Update("state", state).Error
}

func (r *conversationRepo) UpdateContext(id uuid.UUID, context datatypes.JSON) error {
	return r.db.Model(&models.Conversation{}).
		Where("id = ?", id).
		Update("context", context).Error
}

func (r *conversationRepo) ListStaleInState(state models.ConversationState, cutoff time.Time, limit int) ([]models.Conversation, error) {
	if limit <= 0 {
		limit = 100
	}

	var convs []models.Conversation
	err := r.db.Where("state = ? AND updated_at < ?", state, cutoff).
		Order("updated_at ASC").
		Limit(limit).
		Find(&convs).Error
	return convs, err
}
