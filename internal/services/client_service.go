package services

import (
	"epicevents/internal/auth"
	"epicevents/internal/models"
	"epicevents/internal/queryfilter"
	"epicevents/internal/repositories"
	"epicevents/internal/services/dto"
	"epicevents/pkg/apperrors"
)

const msgClientIDNotFound = "This ID client doesn't exist."

type ClientService interface {
	List(actor *auth.Claims, q *dto.ClientListQuery) ([]dto.ClientResponse, error)
	Create(actor *auth.Claims, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	Get(actor *auth.Claims, id uint) (*dto.ClientResponse, error)
	Update(actor *auth.Claims, id uint, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(actor *auth.Claims, id uint) error
	Reassign(actor *auth.Claims, id uint, req *dto.ReassignClientRequest) (*dto.ClientResponse, error)
}

type clientService struct {
	clientRepo repositories.ClientRepository
	eventRepo  repositories.EventRepository
	userRepo   repositories.UserRepository
}

func NewClientService(
	clientRepo repositories.ClientRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
	}
}

// List returns all clients, every role has read access. With the
// responsible flag set, a seller sees only clients they own and a support
// user only clients linked to events they are assigned to.
func (s *clientService) List(actor *auth.Claims, q *dto.ClientListQuery) ([]dto.ClientResponse, error) {
	filter := repositories.ClientFilter{
		Lastname: q.Lastname,
		Email:    q.Email,
	}

	responsible, err := queryfilter.ParseResponsibleFlag(q.Responsible)
	if err != nil {
		return nil, err
	}
	if responsible {
		switch actor.Role {
		case models.UserRoleSeller:
			filter.SaleContactID = &actor.UserID
		case models.UserRoleSupport:
			ids, err := s.eventRepo.ClientIDsForSupport(actor.UserID)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			if len(ids) == 0 {
				return []dto.ClientResponse{}, nil
			}
			filter.IDs = ids
		}
	}

	clients, err := s.clientRepo.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewClientListResponse(clients), nil
}

// Create makes the acting seller the owner, whatever the payload says.
func (s *clientService) Create(actor *auth.Claims, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if !auth.CanPerform(actor.Role, auth.OpClientCreate) {
		return nil, apperrors.NewForbiddenError("Access denied, you're not a 'seller' user.")
	}

	role := req.Role
	if role == "" {
		role = models.ClientRoleClient
	}

	client := &models.Client{
		Firstname:     req.Firstname,
		Lastname:      req.Lastname,
		Email:         req.Email,
		Phone:         req.Phone,
		Mobile:        req.Mobile,
		Role:          role,
		CompanyName:   req.CompanyName,
		SaleContactID: &actor.UserID,
	}

	if err := s.clientRepo.Create(client); err != nil {
		if apperrors.Is(err, repositories.ErrClientAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err).WithDetails(map[string]string{"email": "Email or mobile already in use"})
		}
		return nil, apperrors.InternalError(err)
	}

	return s.Get(actor, client.ID)
}

func (s *clientService) Get(actor *auth.Claims, id uint) (*dto.ClientResponse, error) {
	client, err := s.findClient(id)
	if err != nil {
		return nil, err
	}
	return dto.NewClientResponse(client), nil
}

func (s *clientService) Update(actor *auth.Claims, id uint, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := s.findClient(id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMutation(actor, client, auth.OpClientUpdate); err != nil {
		return nil, err
	}

	if req.Firstname != nil {
		client.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		client.Lastname = *req.Lastname
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Mobile != nil {
		client.Mobile = *req.Mobile
	}
	if req.Role != nil {
		client.Role = *req.Role
	}
	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}

	if err := s.clientRepo.Save(client); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewClientResponse(client), nil
}

func (s *clientService) Delete(actor *auth.Claims, id uint) error {
	client, err := s.findClient(id)
	if err != nil {
		return err
	}

	if err := s.authorizeMutation(actor, client, auth.OpClientDelete); err != nil {
		return err
	}

	if err := s.clientRepo.Delete(client); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Reassign is the explicit ownership-transfer operation; only a manager
// may move a client to another seller.
func (s *clientService) Reassign(actor *auth.Claims, id uint, req *dto.ReassignClientRequest) (*dto.ClientResponse, error) {
	if !auth.CanPerform(actor.Role, auth.OpClientReassign) {
		return nil, apperrors.NewForbiddenError("Access denied, you're not a 'manager' user.")
	}

	client, err := s.findClient(id)
	if err != nil {
		return nil, err
	}

	seller, err := s.userRepo.FindByUsername(req.SaleContact)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("clients", "This user doesn't exist.")
		}
		return nil, apperrors.InternalError(err)
	}
	if seller.Role != models.UserRoleSeller {
		return nil, apperrors.NewDomainConflictError("clients", "Sale contact must be a 'seller' user.")
	}

	client.SaleContactID = &seller.ID
	client.SaleContact = seller
	if err := s.clientRepo.Save(client); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewClientResponse(client), nil
}

func (s *clientService) findClient(id uint) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.NewNotFoundError("clients", msgClientIDNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	return client, nil
}

// authorizeMutation runs the role gate first, then the ownership gate
// against the target client.
func (s *clientService) authorizeMutation(actor *auth.Claims, client *models.Client, op auth.Operation) error {
	if !auth.CanPerform(actor.Role, op) {
		return apperrors.NewForbiddenError("Access denied, you're not a 'seller' user.")
	}
	if !auth.SellerOwnsClient(actor, client) {
		return apperrors.NewForbiddenError("Access denied, you're not responsible of this client.")
	}
	return nil
}
