package interaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/entities"
	"github.com/gigmarket/billing-service/internal/logging"
	"github.com/gigmarket/billing-service/internal/money"
	"github.com/gigmarket/billing-service/internal/repository/database"
)

// CalculateInvoiceTotalAmount computes the payable amount of an invoice
// from its subtotal, discount rate and vat rate.
func CalculateInvoiceTotalAmount(invoice *entities.Invoice) (decimal.Decimal, error) {
	return money.InvoiceTotal(invoice.Subtotal, invoice.VatRate, invoice.DiscountRate)
}

// PayInvoice moves the invoice total from the client's wallet to the
// contractor's wallet and marks the invoice paid.
//
// The whole operation runs inside a single serializable transaction, so a
// concurrent second attempt on the same invoice either sees the invoice
// already paid and is rejected, or is serialized after this one commits and
// then sees it paid. No partial mutation is ever observable: any rejection
// or failure rolls the transaction back entirely.
func (s *serviceInteractor) PayInvoice(ctx context.Context, invoiceID uint, actingUserID uint) error {
	logger := logging.LoggerFromContext(ctx)

	err := s.store.RunSerializable(ctx, func(tx database.Repository) error {
		invoice, err := tx.GetInvoiceWithParties(ctx, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apierrors.NewNotFound("Invoice not found")
		}

		client := invoice.Contract.Client
		contractor := invoice.Contract.Contractor

		// only the client of the contract may pay its invoices
		if client.ID != actingUserID {
			return apierrors.NewForbidden("You are not allowed to pay this invoice")
		}

		if invoice.PaidAt.Valid {
			return apierrors.NewConflict("This invoice has already been paid")
		}

		if contractor.Wallet == nil {
			return apierrors.NewConflict("The contractor does not have a wallet configured")
		}

		if client.Wallet == nil {
			return apierrors.NewConflict("You don't have a wallet configured")
		}

		totalAmount, err := CalculateInvoiceTotalAmount(invoice)
		if err != nil {
			return apierrors.NewInternalServerError(fmt.Sprintf("invoice %d carries an unreadable subtotal: %v", invoice.ID, err))
		}

		clientBalance, err := money.Parse(client.Wallet.Balance)
		if err != nil {
			return apierrors.NewInternalServerError(fmt.Sprintf("wallet of user %d carries an unreadable balance: %v", client.ID, err))
		}

		contractorBalance, err := money.Parse(contractor.Wallet.Balance)
		if err != nil {
			return apierrors.NewInternalServerError(fmt.Sprintf("wallet of user %d carries an unreadable balance: %v", contractor.ID, err))
		}

		balanceAfterward := clientBalance.Sub(totalAmount)
		if balanceAfterward.IsNegative() {
			return apierrors.NewConflict("You don't have enough money to pay this invoice")
		}

		if err := tx.UpdateWalletBalance(ctx, client.ID, money.Format(balanceAfterward)); err != nil {
			return err
		}

		if err := tx.UpdateWalletBalance(ctx, contractor.ID, money.Format(contractorBalance.Add(totalAmount))); err != nil {
			return err
		}

		return tx.SetInvoicePaid(ctx, invoice.ID, time.Now().UTC())
	})

	if err != nil {
		return err
	}

	logger.Info("invoice %d paid by user %d", invoiceID, actingUserID)
	return nil
}

func (s *serviceInteractor) CreateInvoice(ctx context.Context, invoice *entities.Invoice) (*entities.Invoice, error) {
	if !money.IsValidAmount(invoice.Subtotal) {
		return nil, apierrors.NewBadRequest("The invoice subtotal has the wrong format")
	}

	if invoice.Status == "" {
		invoice.Status = entities.InvoiceStatusPending
	}
	if !invoice.Status.IsValid() {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("invalid invoice status %s provided", invoice.Status))
	}

	contract, err := s.store.GetContractByID(ctx, invoice.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apierrors.NewBadRequest("The invoice references a contract that does not exist")
	}

	if err := s.store.CreateInvoice(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}
