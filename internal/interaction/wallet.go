package interaction

import (
	"context"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/entities"
	"github.com/gigmarket/billing-service/internal/money"
)

func (s *serviceInteractor) CreateWallet(ctx context.Context, userID uint, initialBalance string) (*entities.Wallet, error) {
	if initialBalance == "" {
		initialBalance = "0.00"
	}
	if !money.IsValidAmount(initialBalance) {
		return nil, apierrors.NewBadRequest("Invalid amount")
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierrors.NewNotFound("User not found")
	}

	existing, err := s.store.GetWalletForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierrors.NewConflict("The user already has a wallet configured")
	}

	wallet := &entities.Wallet{
		UserID:  userID,
		Balance: initialBalance,
	}

	if err := s.store.CreateWallet(ctx, wallet); err != nil {
		return nil, err
	}

	return wallet, nil
}

func (s *serviceInteractor) GetWalletForUser(ctx context.Context, userID uint) (*entities.Wallet, error) {
	wallet, err := s.store.GetWalletForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apierrors.NewNotFound("You don't have a wallet configured")
	}

	return wallet, nil
}
