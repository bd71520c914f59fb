package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
)

type ClientRepo interface {
	// FindOrCreateByPhone returns the client owning the phone number,
	// creating the row on first contact.
	FindOrCreateByPhone(phone string) (*models.Client, error)
	GetByID(id uuid.UUID) (*models.Client, error)
	GetByPhone(phone string) (*models.Client, error)
	Update(client *models.Client) error
	List(limit int) ([]models.Client, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepo {
	return &clientRepo{db: db}
}

func (r *clientRepo) FindOrCreateByPhone(phone string) (*models.Client, error) {
	var client models.Client
	err := r.db.Where(models.Client{Phone: phone}).
		Attrs(models.Client{AIEnabled: true}).
		FirstOrCreate(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) GetByPhone(phone string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "phone = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepo) List(limit int) ([]models.Client, error) {
	if limit <= 0 {
		limit = 100
	}

	var clients []models.Client
	err := r.db.Order("created_at DESC").Limit(limit).Find(&clients).Error
	return clients, err
}
