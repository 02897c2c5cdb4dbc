package inmemory

import (
	"context"
	"errors"
	"time"

	"github.com/gigmarket/billing-service/internal/entities"
)

func (m *inmemoryProvider) CreateWallet(ctx context.Context, wallet *entities.Wallet) error {
	if wallet.ID != 0 {
		return errors.New("create needs a new wallet")
	}
	if _, exists := m.wallets[wallet.UserID]; exists {
		return errors.New("the user already has a wallet")
	}
	wallet.ID = m.nextID()
	if wallet.CreatedAt.IsZero() {
		wallet.CreatedAt = time.Now()
	}

	m.wallets[wallet.UserID] = *wallet
	return nil
}

func (m *inmemoryProvider) GetWalletForUser(ctx context.Context, userID uint) (*entities.Wallet, error) {
	wallet, ok := m.wallets[userID]
	if !ok {
		return nil, nil
	}

	copy := wallet
	return &copy, nil
}

func (m *inmemoryProvider) UpdateWalletBalance(ctx context.Context, userID uint, balance string) error {
	wallet, ok := m.wallets[userID]
	if !ok {
		return errors.New("no wallet found for user")
	}

	wallet.Balance = balance
	m.wallets[userID] = wallet
	return nil
}
