package interaction

import (
	"context"
	"fmt"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/entities"
)

func (s *serviceInteractor) CreateContract(ctx context.Context, contract *entities.Contract) (*entities.Contract, error) {
	if contract.Status == "" {
		contract.Status = entities.ContractStatusPending
	}
	if !contract.Status.IsValid() {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("invalid contract status %s provided", contract.Status))
	}

	if err := ValidateContractInput(contract); err != nil {
		return nil, err
	}

	// both parties and the job must exist before the contract may be persisted
	client, err := s.store.GetUserByID(ctx, contract.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apierrors.NewBadRequest("The contract references a client that does not exist")
	}

	contractor, err := s.store.GetUserByID(ctx, contract.ContractorID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, apierrors.NewBadRequest("The contract references a contractor that does not exist")
	}

	job, err := s.store.GetJobByID(ctx, contract.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apierrors.NewBadRequest("The contract references a job that does not exist")
	}

	if err := s.store.CreateContract(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}

func (s *serviceInteractor) GetContractsForUser(ctx context.Context, userID uint) ([]entities.Contract, error) {
	return s.store.GetContractsForUser(ctx, userID)
}
