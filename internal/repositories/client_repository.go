package repositories

import (
	"errors"

	"gorm.io/gorm"

	"epicevents/internal/models"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client already exists")
)

// ClientFilter narrows a client listing. Zero values mean "no restriction";
// IDs restricts to the given set when non-empty.
type ClientFilter struct {
	Lastname      string
	Email         string
	SaleContactID *uint
	IDs           []uint
}

type ClientRepository interface {
	FindByID(id uint) (*models.Client, error)
	FindByEmail(email string) (*models.Client, error)
	Create(client *models.Client) error
	Save(client *models.Client) error
	Delete(client *models.Client) error
	List(filter ClientFilter) ([]models.Client, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("SaleContact").First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindByEmail(email string) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("SaleContact").First(&client, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(client *models.Client) error {
	err := r.db.Create(client).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrClientAlreadyExists
	}
	return err
}

func (r *clientRepository) Save(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) Delete(client *models.Client) error {
	return r.db.Select("Contracts", "Events").Delete(client).Error
}

func (r *clientRepository) List(filter ClientFilter) ([]models.Client, error) {
	query := r.db.Preload("SaleContact")

	if filter.Lastname != "" {
		query = query.Where("lastname = ?", filter.Lastname)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.SaleContactID != nil {
		query = query.Where("sale_contact_id = ?", *filter.SaleContactID)
	}
	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}

	var clients []models.Client
	if err := query.Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
