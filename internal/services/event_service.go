package services

import (
	"fmt"
	"strconv"
	"time"

	"epicevents/internal/auth"
	"epicevents/internal/models"
	"epicevents/internal/queryfilter"
	"epicevents/internal/repositories"
	"epicevents/internal/services/dto"
	"epicevents/pkg/apperrors"
)

const msgEventIDNotFound = "This ID event doesn't exist."

type EventService interface {
	List(actor *auth.Claims, q *dto.EventListQuery) ([]dto.EventResponse, error)
	Create(actor *auth.Claims, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	Get(actor *auth.Claims, id uint) (*dto.EventResponse, error)
	Update(actor *auth.Claims, id uint, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(actor *auth.Claims, id uint) error
}

type eventService struct {
	eventRepo    repositories.EventRepository
	contractRepo repositories.ContractRepository
	clientRepo   repositories.ClientRepository
	userRepo     repositories.UserRepository
}

func NewEventService(
	eventRepo repositories.EventRepository,
	contractRepo repositories.ContractRepository,
	clientRepo repositories.ClientRepository,
	userRepo repositories.UserRepository,
) EventService {
	return &eventService{
		eventRepo:    eventRepo,
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		userRepo:     userRepo,
	}
}

// List returns all events; with the responsible flag, a support user sees
// only events they are assigned to.
func (s *eventService) List(actor *auth.Claims, q *dto.EventListQuery) ([]dto.EventResponse, error) {
	filter := repositories.EventFilter{
		ClientLastname: q.Lastname,
		ClientEmail:    q.Email,
	}

	responsible, err := queryfilter.ParseResponsibleFlag(q.Responsible)
	if err != nil {
		return nil, err
	}
	if responsible && actor.Role == models.UserRoleSupport {
		filter.SupportContactID = &actor.UserID
	}

	if q.EventDate != "" {
		day, err := queryfilter.ParseDay(q.EventDate)
		if err != nil {
			return nil, err
		}
		filter.EventDay = &day
	}

	events, err := s.eventRepo.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEventListResponse(events), nil
}

// Create resolves the client by email and the contract by id, then checks
// the cross-entity invariants: the seller owns the client, the contract has
// no event yet, and the contract belongs to that client. The unique index
// on contract_id catches the duplicate a racing request slipped past the
// existence check.
func (s *eventService) Create(actor *auth.Claims, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !auth.CanPerform(actor.Role, auth.OpEventCreate) {
		return nil, apperrors.NewForbiddenError("Access denied, you're not a 'seller' user.")
	}

	client, err := s.clientRepo.FindByEmail(req.ClientEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.NewNotFoundError("events", msgClientNotFound)
		}
		return nil, apperrors.InternalError(err)
	}

	contractID, err := strconv.ParseUint(req.ContractID.String(), 10, 64)
	if err != nil {
		return nil, apperrors.NewNotFoundError("events", "Enter a correct contract ID.")
	}

	contract, err := s.contractRepo.FindByID(uint(contractID))
	if err != nil {
		if apperrors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.NewNotFoundError("events", "This contract doesn't exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.SellerOwnsClient(actor, client) {
		return nil, apperrors.NewForbiddenError("Access denied, you're not responsible of this client.")
	}

	taken, err := s.eventRepo.ExistsForContract(contract.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, duplicateEventError(contract.ID)
	}
	if contract.ClientID != client.ID {
		return nil, apperrors.NewDomainConflictError("events",
			fmt.Sprintf("Client '%s' doesn't have the contract ID %d.", client.Email, contract.ID))
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"event_date": "Must be a YYYY-MM-DD date"})
	}

	event := &models.Event{
		Attendees:  req.Attendees,
		EventDate:  eventDate,
		Notes:      req.Notes,
		ClientID:   client.ID,
		ContractID: contract.ID,
	}

	if err := s.eventRepo.Create(event); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateEvent) {
			return nil, duplicateEventError(contract.ID)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.Get(actor, event.ID)
}

func (s *eventService) Get(actor *auth.Claims, id uint) (*dto.EventResponse, error) {
	event, err := s.findEvent(id)
	if err != nil {
		return nil, err
	}
	return dto.NewEventResponse(event), nil
}

// Update is gated on assignment: the acting user must already be the
// event's support contact, or a manager. Only a manager may (re)assign the
// support contact itself.
func (s *eventService) Update(actor *auth.Claims, id uint, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.findEvent(id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMutation(actor, event, auth.OpEventUpdate); err != nil {
		return nil, err
	}

	if req.SupportContact != nil {
		if !auth.IsManager(actor) {
			return nil, apperrors.NewForbiddenError("Access denied, only a 'manager' can assign the support contact.")
		}
		support, err := s.userRepo.FindByUsername(*req.SupportContact)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.NewNotFoundError("events", "This user doesn't exist.")
			}
			return nil, apperrors.InternalError(err)
		}
		if support.Role != models.UserRoleSupport {
			return nil, apperrors.NewDomainConflictError("events", "Support contact must be a 'support' user.")
		}
		event.SupportContactID = &support.ID
		event.SupportContact = support
	}

	if req.Attendees != nil {
		event.Attendees = *req.Attendees
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"event_date": "Must be a YYYY-MM-DD date"})
		}
		event.EventDate = eventDate
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}

	if err := s.eventRepo.Save(event); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEventResponse(event), nil
}

func (s *eventService) Delete(actor *auth.Claims, id uint) error {
	event, err := s.findEvent(id)
	if err != nil {
		return err
	}

	if err := s.authorizeMutation(actor, event, auth.OpEventDelete); err != nil {
		return err
	}

	if err := s.eventRepo.Delete(event); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *eventService) findEvent(id uint) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.NewNotFoundError("events", msgEventIDNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	return event, nil
}

func (s *eventService) authorizeMutation(actor *auth.Claims, event *models.Event, op auth.Operation) error {
	if !auth.CanPerform(actor.Role, op) {
		return apperrors.NewForbiddenError("Access denied, you're not a 'support' user.")
	}
	if auth.IsManager(actor) {
		return nil
	}
	if !auth.SupportAssignedToEvent(actor, event) {
		return apperrors.NewForbiddenError("Access denied, you're not responsible of this event.")
	}
	return nil
}

func duplicateEventError(contractID uint) *apperrors.AppError {
	return apperrors.NewDomainConflictError("events",
		fmt.Sprintf("Contract '%d' already has an event.", contractID))
}
