package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gigmarket/billing-service/internal/entities"
	"github.com/gigmarket/billing-service/internal/repository/database"
)

func seedParties(t *testing.T, repo database.Repository) (client, contractor *entities.User, invoiceID uint) {
	t.Helper()
	ctx := context.Background()

	client = &entities.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, repo.CreateUser(ctx, client))
	contractor = &entities.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, repo.CreateUser(ctx, contractor))

	require.NoError(t, repo.CreateWallet(ctx, &entities.Wallet{UserID: client.ID, Balance: "100.00"}))
	require.NoError(t, repo.CreateWallet(ctx, &entities.Wallet{UserID: contractor.ID, Balance: "0.00"}))

	job := &entities.Job{Name: "Job", UserID: client.ID}
	require.NoError(t, repo.CreateJob(ctx, job))

	contract := &entities.Contract{
		Name:         "Contract",
		ClientID:     client.ID,
		ContractorID: contractor.ID,
		JobID:        job.ID,
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 0, 7),
		TotalCost:    "100.00",
		Status:       entities.ContractStatusActive,
	}
	require.NoError(t, repo.CreateContract(ctx, contract))

	invoice := &entities.Invoice{
		Number:     "INV-1",
		ContractID: contract.ID,
		Subtotal:   "100.00",
		Status:     entities.InvoiceStatusPending,
	}
	require.NoError(t, repo.CreateInvoice(ctx, invoice))

	return client, contractor, invoice.ID
}

func TestRunSerializableRollsBackAllTables(t *testing.T) {
	repo := NewInMemoryProvider()
	client, _, invoiceID := seedParties(t, repo)
	ctx := context.Background()

	failure := errors.New("late failure")
	err := repo.RunSerializable(ctx, func(tx database.Repository) error {
		if err := tx.UpdateWalletBalance(ctx, client.ID, "0.00"); err != nil {
			return err
		}
		if err := tx.SetInvoicePaid(ctx, invoiceID, time.Now()); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	wallet, err := repo.GetWalletForUser(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, "100.00", wallet.Balance)

	invoice, err := repo.GetInvoiceWithParties(ctx, invoiceID)
	require.NoError(t, err)
	require.False(t, invoice.PaidAt.Valid)
	require.Equal(t, entities.InvoiceStatusPending, invoice.Status)
}

func TestRunSerializableCommitsOnSuccess(t *testing.T) {
	repo := NewInMemoryProvider()
	client, contractor, invoiceID := seedParties(t, repo)
	ctx := context.Background()

	err := repo.RunSerializable(ctx, func(tx database.Repository) error {
		if err := tx.UpdateWalletBalance(ctx, client.ID, "0.00"); err != nil {
			return err
		}
		if err := tx.UpdateWalletBalance(ctx, contractor.ID, "100.00"); err != nil {
			return err
		}
		return tx.SetInvoicePaid(ctx, invoiceID, time.Now())
	})
	require.NoError(t, err)

	wallet, err := repo.GetWalletForUser(ctx, contractor.ID)
	require.NoError(t, err)
	require.Equal(t, "100.00", wallet.Balance)

	invoice, err := repo.GetInvoiceWithParties(ctx, invoiceID)
	require.NoError(t, err)
	require.True(t, invoice.PaidAt.Valid)
}

func TestGetInvoiceWithPartiesAssemblesTheJoin(t *testing.T) {
	repo := NewInMemoryProvider()
	client, contractor, invoiceID := seedParties(t, repo)

	invoice, err := repo.GetInvoiceWithParties(context.Background(), invoiceID)
	require.NoError(t, err)
	require.NotNil(t, invoice)

	require.Equal(t, client.ID, invoice.Contract.Client.ID)
	require.Equal(t, contractor.ID, invoice.Contract.Contractor.ID)
	require.NotNil(t, invoice.Contract.Client.Wallet)
	require.NotNil(t, invoice.Contract.Contractor.Wallet)
	require.Equal(t, "100.00", invoice.Contract.Client.Wallet.Balance)
}

func TestGetInvoiceWithPartiesReturnsNilWhenMissing(t *testing.T) {
	repo := NewInMemoryProvider()

	invoice, err := repo.GetInvoiceWithParties(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, invoice)
}

func TestReadsReturnCopies(t *testing.T) {
	repo := NewInMemoryProvider()
	client, _, _ := seedParties(t, repo)
	ctx := context.Background()

	wallet, err := repo.GetWalletForUser(ctx, client.ID)
	require.NoError(t, err)
	wallet.Balance = "999999.99"

	fresh, err := repo.GetWalletForUser(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, "100.00", fresh.Balance)
}

func TestUpdateWalletBalanceRequiresAWallet(t *testing.T) {
	repo := NewInMemoryProvider()

	err := repo.UpdateWalletBalance(context.Background(), 42, "10.00")
	require.EqualError(t, err, "no wallet found for user")
}

func TestCreateWalletRejectsDuplicates(t *testing.T) {
	repo := NewInMemoryProvider()
	ctx := context.Background()

	user := &entities.User{Name: "Dana", Email: "dana@example.com"}
	require.NoError(t, repo.CreateUser(ctx, user))

	require.NoError(t, repo.CreateWallet(ctx, &entities.Wallet{UserID: user.ID, Balance: "0.00"}))
	err := repo.CreateWallet(ctx, &entities.Wallet{UserID: user.ID, Balance: "0.00"})
	require.EqualError(t, err, "the user already has a wallet")
}
