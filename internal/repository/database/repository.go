package database

import (
	"context"
	"time"

	"github.com/gigmarket/billing-service/internal/entities"
)

type Repository interface {
	Migrate() error
	UserCRUD
	JobCRUD
	ContractCRUD
	InvoiceCRUD
	WalletCRUD

	// RunSerializable executes fn against a repository view bound to a single
	// serializable transaction. When fn returns an error, every write issued
	// through that view is rolled back and the error is returned unchanged,
	// except that store detected contention (deadlock, lock wait timeout) is
	// reported as a retryable apierrors.ServiceUnavailable.
	RunSerializable(ctx context.Context, fn func(Repository) error) error
}

type UserCRUD interface {
	CreateUser(ctx context.Context, user *entities.User) error
	// GetUserByID returns nil when no such user exists.
	GetUserByID(ctx context.Context, id uint) (*entities.User, error)
}

type JobCRUD interface {
	CreateJob(ctx context.Context, job *entities.Job) error
	// GetJobByID returns nil when no such job exists.
	GetJobByID(ctx context.Context, id uint) (*entities.Job, error)
}

type ContractCRUD interface {
	CreateContract(ctx context.Context, contract *entities.Contract) error
	// GetContractByID returns nil when no such contract exists.
	GetContractByID(ctx context.Context, id uint) (*entities.Contract, error)
	// GetContractsForUser returns all contracts in which the user takes part,
	// whether as client or as contractor.
	GetContractsForUser(ctx context.Context, userID uint) ([]entities.Contract, error)
}

type InvoiceCRUD interface {
	CreateInvoice(ctx context.Context, invoice *entities.Invoice) error
	// GetInvoiceWithParties loads an invoice together with its contract, the
	// contract's client and contractor, and their wallets (nil for a user
	// without one). Returns nil when the invoice does not exist.
	GetInvoiceWithParties(ctx context.Context, id uint) (*entities.Invoice, error)
	SetInvoicePaid(ctx context.Context, invoiceID uint, paidAt time.Time) error
}

type WalletCRUD interface {
	CreateWallet(ctx context.Context, wallet *entities.Wallet) error
	// GetWalletForUser returns nil when the user has no wallet.
	GetWalletForUser(ctx context.Context, userID uint) (*entities.Wallet, error)
	// UpdateWalletBalance sets the balance of the wallet owned by userID.
	UpdateWalletBalance(ctx context.Context, userID uint, balance string) error
}
