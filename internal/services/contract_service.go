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

const (
	msgContractIDNotFound = "This ID contract doesn't exist."
	msgClientNotFound     = "This client doesn't exist."
)

type ContractService interface {
	List(actor *auth.Claims, q *dto.ContractListQuery) ([]dto.ContractResponse, error)
	Create(actor *auth.Claims, req *dto.CreateContractRequest) (*dto.ContractResponse, error)
	Get(actor *auth.Claims, id uint) (*dto.ContractResponse, error)
	Update(actor *auth.Claims, id uint, req *dto.UpdateContractRequest) (*dto.ContractResponse, error)
	Delete(actor *auth.Claims, id uint) error
}

type contractService struct {
	contractRepo repositories.ContractRepository
	clientRepo   repositories.ClientRepository
}

func NewContractService(
	contractRepo repositories.ContractRepository,
	clientRepo repositories.ClientRepository,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
	}
}

// List returns all contracts; with the responsible flag, a seller sees
// only contracts they are the sales contact of.
func (s *contractService) List(actor *auth.Claims, q *dto.ContractListQuery) ([]dto.ContractResponse, error) {
	filter := repositories.ContractFilter{
		ClientLastname: q.Lastname,
		ClientEmail:    q.Email,
	}

	responsible, err := queryfilter.ParseResponsibleFlag(q.Responsible)
	if err != nil {
		return nil, err
	}
	if responsible && actor.Role == models.UserRoleSeller {
		filter.SalesContactID = &actor.UserID
	}

	if q.DateCreated != "" {
		day, err := queryfilter.ParseDay(q.DateCreated)
		if err != nil {
			return nil, err
		}
		filter.CreatedDay = &day
	}
	if q.Amount != "" {
		amount, err := strconv.ParseFloat(q.Amount, 64)
		if err != nil {
			return nil, apperrors.NewInvalidQueryParamError("'amount' must be a number")
		}
		filter.Amount = &amount
	}

	contracts, err := s.contractRepo.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContractListResponse(contracts), nil
}

// Create resolves the client by email and enforces the two creation
// invariants: no contract for a prospect, and only the owning seller may
// contract their client. Status and sales contact are forced server-side.
func (s *contractService) Create(actor *auth.Claims, req *dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if !auth.CanPerform(actor.Role, auth.OpContractCreate) {
		return nil, apperrors.NewForbiddenError("Access denied, you're not a 'seller' user.")
	}

	client, err := s.clientRepo.FindByEmail(req.Client)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.NewNotFoundError("contracts", msgClientNotFound)
		}
		return nil, apperrors.InternalError(err)
	}

	if client.Role != models.ClientRoleClient {
		return nil, apperrors.NewDomainConflictError("contracts", "Can't create a contract for a prospect.")
	}
	if !auth.SellerOwnsClient(actor, client) {
		return nil, apperrors.NewForbiddenError("Access denied, you're not responsible of this client.")
	}

	contract := &models.Contract{
		Status:         models.ContractStatusUnsigned,
		Amount:         req.Amount,
		ClientID:       client.ID,
		Client:         client,
		SalesContactID: &actor.UserID,
	}
	if req.PaymentDue != nil {
		due, err := time.Parse("2006-01-02", *req.PaymentDue)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"payment_due": "Must be a YYYY-MM-DD date"})
		}
		contract.PaymentDue = &due
	}

	if err := s.contractRepo.Create(contract); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.Get(actor, contract.ID)
}

func (s *contractService) Get(actor *auth.Claims, id uint) (*dto.ContractResponse, error) {
	contract, err := s.findContract(id)
	if err != nil {
		return nil, err
	}
	return dto.NewContractResponse(contract), nil
}

func (s *contractService) Update(actor *auth.Claims, id uint, req *dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := s.findContract(id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMutation(actor, contract, auth.OpContractUpdate); err != nil {
		return nil, err
	}

	// A supplied client is re-resolved by email and substituted.
	if req.Client != nil {
		client, err := s.clientRepo.FindByEmail(*req.Client)
		if err != nil {
			if apperrors.Is(err, repositories.ErrClientNotFound) {
				return nil, apperrors.NewNotFoundError("contracts", msgClientNotFound)
			}
			return nil, apperrors.InternalError(err)
		}
		contract.ClientID = client.ID
		contract.Client = client
	}

	if req.Status != nil {
		contract.Status = *req.Status
	}
	if req.Amount != nil {
		contract.Amount = *req.Amount
	}
	if req.PaymentDue != nil {
		due, err := time.Parse("2006-01-02", *req.PaymentDue)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"payment_due": "Must be a YYYY-MM-DD date"})
		}
		contract.PaymentDue = &due
	}

	if err := s.contractRepo.Save(contract); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContractResponse(contract), nil
}

func (s *contractService) Delete(actor *auth.Claims, id uint) error {
	contract, err := s.findContract(id)
	if err != nil {
		return err
	}

	if err := s.authorizeMutation(actor, contract, auth.OpContractDelete); err != nil {
		return err
	}

	if err := s.contractRepo.Delete(contract); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *contractService) findContract(id uint) (*models.Contract, error) {
	contract, err := s.contractRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.NewNotFoundError("contracts", msgContractIDNotFound)
		}
		return nil, apperrors.InternalError(fmt.Errorf("find contract: %w", err))
	}
	return contract, nil
}

func (s *contractService) authorizeMutation(actor *auth.Claims, contract *models.Contract, op auth.Operation) error {
	if !auth.CanPerform(actor.Role, op) {
		return apperrors.NewForbiddenError("Access denied, you're not a 'seller' user.")
	}
	if !auth.SellerOwnsContract(actor, contract) {
		return apperrors.NewForbiddenError("Access denied, you're not responsible of this contract.")
	}
	return nil
}
