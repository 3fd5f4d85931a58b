package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"epicevents/internal/models"
	"epicevents/internal/queryfilter"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrDuplicateEvent = errors.New("contract already has an event")
)

// EventFilter narrows an event listing. Lastname and email match through
// the related client.
type EventFilter struct {
	ClientLastname   string
	ClientEmail      string
	EventDay         *time.Time
	SupportContactID *uint
}

type EventRepository interface {
	FindByID(id uint) (*models.Event, error)
	Create(event *models.Event) error
	Save(event *models.Event) error
	Delete(event *models.Event) error
	List(filter EventFilter) ([]models.Event, error)

	// ExistsForContract backs the friendly duplicate-event message; the
	// unique index on contract_id is what actually closes the race.
	ExistsForContract(contractID uint) (bool, error)

	// ClientIDsForSupport returns the ids of clients linked to events the
	// given support user is assigned to.
	ClientIDsForSupport(userID uint) ([]uint, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Client").Preload("Contract.Client").Preload("SupportContact").
		First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(event *models.Event) error {
	err := r.db.Create(event).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEvent
	}
	return err
}

func (r *eventRepository) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(event *models.Event) error {
	return r.db.Delete(event).Error
}

func (r *eventRepository) List(filter EventFilter) ([]models.Event, error) {
	query := r.db.Model(&models.Event{}).
		Preload("Client").Preload("Contract.Client").Preload("SupportContact")

	if filter.ClientLastname != "" || filter.ClientEmail != "" {
		query = query.Joins("JOIN clients ON clients.id = events.client_id")
		if filter.ClientLastname != "" {
			query = query.Where("clients.lastname = ?", filter.ClientLastname)
		}
		if filter.ClientEmail != "" {
			query = query.Where("clients.email = ?", filter.ClientEmail)
		}
	}
	if filter.EventDay != nil {
		query = query.Scopes(queryfilter.DayRange("events.event_date", *filter.EventDay))
	}
	if filter.SupportContactID != nil {
		query = query.Where("events.support_contact_id = ?", *filter.SupportContactID)
	}

	var events []models.Event
	if err := query.Order("events.id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ExistsForContract(contractID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("contract_id = ?", contractID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *eventRepository) ClientIDsForSupport(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Event{}).
		Where("support_contact_id = ?", userID).
		Distinct().
		Pluck("client_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
