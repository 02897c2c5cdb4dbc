package inmemory

import (
	"context"
	"errors"
	"time"

	"github.com/gigmarket/billing-service/internal/entities"
)

func (m *inmemoryProvider) CreateUser(ctx context.Context, user *entities.User) error {
	if user.ID != 0 {
		return errors.New("create needs a new user")
	}
	user.ID = m.nextID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	stored := *user
	stored.Wallet = nil
	m.users[user.ID] = stored
	return nil
}

func (m *inmemoryProvider) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}

	copy := user
	return &copy, nil
}

func (m *inmemoryProvider) CreateJob(ctx context.Context, job *entities.Job) error {
	if job.ID != 0 {
		return errors.New("create needs a new job")
	}
	job.ID = m.nextID()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	m.jobs[job.ID] = *job
	return nil
}

func (m *inmemoryProvider) GetJobByID(ctx context.Context, id uint) (*entities.Job, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}

	copy := job
	return &copy, nil
}

func (m *inmemoryProvider) CreateContract(ctx context.Context, contract *entities.Contract) error {
	if contract.ID != 0 {
		return errors.New("create needs a new contract")
	}
	contract.ID = m.nextID()
	if contract.CreatedAt.IsZero() {
		contract.CreatedAt = time.Now()
	}

	stored := *contract
	stored.Client = entities.User{}
	stored.Contractor = entities.User{}
	m.contracts[contract.ID] = stored
	return nil
}

func (m *inmemoryProvider) GetContractByID(ctx context.Context, id uint) (*entities.Contract, error) {
	contract, ok := m.contracts[id]
	if !ok {
		return nil, nil
	}

	copy := contract
	return &copy, nil
}

func (m *inmemoryProvider) GetContractsForUser(ctx context.Context, userID uint) ([]entities.Contract, error) {
	result := make([]entities.Contract, 0)
	for _, c := range m.contracts {
		if c.ClientID == userID || c.ContractorID == userID {
			result = append(result, c)
		}
	}

	return result, nil
}
