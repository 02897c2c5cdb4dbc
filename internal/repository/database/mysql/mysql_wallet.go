package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gigmarket/billing-service/internal/entities"
)

func (m *mysqlConnector) CreateWallet(ctx context.Context, wallet *entities.Wallet) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	result := m.db.WithContext(tCtx).Create(wallet)

	return result.Error
}

func (m *mysqlConnector) GetWalletForUser(ctx context.Context, userID uint) (*entities.Wallet, error) {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	var wallet entities.Wallet
	res := m.db.WithContext(tCtx).
		Where(&entities.Wallet{UserID: userID}).
		First(&wallet)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}

	return &wallet, nil
}

func (m *mysqlConnector) UpdateWalletBalance(ctx context.Context, userID uint, balance string) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	res := m.db.WithContext(tCtx).
		Model(&entities.Wallet{}).
		Where("user_id = ?", userID).
		Update("balance", balance)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return errors.New("no wallet found for user")
	}

	return nil
}
