package interaction

import (
	"context"
	"errors"

	"github.com/gigmarket/billing-service/internal/entities"
	"github.com/gigmarket/billing-service/internal/logging"
	"github.com/gigmarket/billing-service/internal/repository/database"
)

var _ Interactor = (*serviceInteractor)(nil)

type Interactor interface {
	// CreateContract validates the candidate contract and persists it.
	// Validation failures are returned as BadRequest errors carrying the
	// violated rule.
	CreateContract(ctx context.Context, contract *entities.Contract) (*entities.Contract, error)
	GetContractsForUser(ctx context.Context, userID uint) ([]entities.Contract, error)

	CreateInvoice(ctx context.Context, invoice *entities.Invoice) (*entities.Invoice, error)
	// PayInvoice settles an invoice from the acting user's wallet into the
	// contractor's wallet and marks the invoice paid, all inside one
	// serializable store transaction.
	PayInvoice(ctx context.Context, invoiceID uint, actingUserID uint) error

	CreateWallet(ctx context.Context, userID uint, initialBalance string) (*entities.Wallet, error)
	GetWalletForUser(ctx context.Context, userID uint) (*entities.Wallet, error)
}

type serviceInteractor struct {
	logger logging.Logger
	store  database.Repository
}

func NewServiceInteractor(r database.Repository, logger logging.Logger) (Interactor, error) {
	if r == nil {
		return nil, errors.New("repository must not be nil")
	}

	return &serviceInteractor{
		logger: logger,
		store:  r,
	}, nil
}
