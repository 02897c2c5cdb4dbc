package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gigmarket/billing-service/internal/entities"
)

func (m *mysqlConnector) CreateContract(ctx context.Context, contract *entities.Contract) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	result := m.db.WithContext(tCtx).Omit("Client", "Contractor").Create(contract)

	return result.Error
}

func (m *mysqlConnector) GetContractByID(ctx context.Context, id uint) (*entities.Contract, error) {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	var contract entities.Contract
	res := m.db.WithContext(tCtx).First(&contract, id)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}

	return &contract, nil
}

func (m *mysqlConnector) GetContractsForUser(ctx context.Context, userID uint) ([]entities.Contract, error) {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	var contracts []entities.Contract
	res := m.db.WithContext(tCtx).
		Where("client_id = ?", userID).
		Or("contractor_id = ?", userID).
		Find(&contracts)

	if res.Error != nil {
		return nil, res.Error
	}

	return contracts, nil
}
