package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"epicevents/internal/models"
	"epicevents/internal/queryfilter"
)

var ErrContractNotFound = errors.New("contract not found")

// ContractFilter narrows a contract listing. Lastname and email match
// through the related client.
type ContractFilter struct {
	ClientLastname string
	ClientEmail    string
	CreatedDay     *time.Time
	Amount         *float64
	SalesContactID *uint
}

type ContractRepository interface {
	FindByID(id uint) (*models.Contract, error)
	Create(contract *models.Contract) error
	Save(contract *models.Contract) error
	Delete(contract *models.Contract) error
	List(filter ContractFilter) ([]models.Contract, error)
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) FindByID(id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.Preload("Client").Preload("SalesContact").First(&contract, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) Create(contract *models.Contract) error {
	return r.db.Create(contract).Error
}

func (r *contractRepository) Save(contract *models.Contract) error {
	return r.db.Save(contract).Error
}

func (r *contractRepository) Delete(contract *models.Contract) error {
	return r.db.Select("Event").Delete(contract).Error
}

func (r *contractRepository) List(filter ContractFilter) ([]models.Contract, error) {
	query := r.db.Model(&models.Contract{}).Preload("Client").Preload("SalesContact")

	if filter.ClientLastname != "" || filter.ClientEmail != "" {
		query = query.Joins("JOIN clients ON clients.id = contracts.client_id")
		if filter.ClientLastname != "" {
			query = query.Where("clients.lastname = ?", filter.ClientLastname)
		}
		if filter.ClientEmail != "" {
			query = query.Where("clients.email = ?", filter.ClientEmail)
		}
	}
	if filter.CreatedDay != nil {
		query = query.Scopes(queryfilter.DayRange("contracts.date_created", *filter.CreatedDay))
	}
	if filter.Amount != nil {
		query = query.Where("contracts.amount = ?", *filter.Amount)
	}
	if filter.SalesContactID != nil {
		query = query.Where("contracts.sales_contact_id = ?", *filter.SalesContactID)
	}

	var contracts []models.Contract
	if err := query.Order("contracts.id").Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}
