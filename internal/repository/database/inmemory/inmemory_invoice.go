package inmemory

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gigmarket/billing-service/internal/entities"
)

func (m *inmemoryProvider) CreateInvoice(ctx context.Context, invoice *entities.Invoice) error {
	if invoice.ID != 0 {
		return errors.New("create needs a new invoice")
	}
	invoice.ID = m.nextID()
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now()
	}

	stored := *invoice
	stored.Contract = entities.Contract{}
	m.invoices[invoice.ID] = stored
	return nil
}

// GetInvoiceWithParties assembles the same join the sql provider preloads:
// invoice -> contract -> {client, contractor} -> wallet.
func (m *inmemoryProvider) GetInvoiceWithParties(ctx context.Context, id uint) (*entities.Invoice, error) {
	invoice, ok := m.invoices[id]
	if !ok {
		return nil, nil
	}

	contract, ok := m.contracts[invoice.ContractID]
	if !ok {
		return nil, errors.New("invoice references a missing contract")
	}

	client, ok := m.users[contract.ClientID]
	if !ok {
		return nil, errors.New("contract references a missing client")
	}
	if w, ok := m.wallets[client.ID]; ok {
		wcopy := w
		client.Wallet = &wcopy
	}

	contractor, ok := m.users[contract.ContractorID]
	if !ok {
		return nil, errors.New("contract references a missing contractor")
	}
	if w, ok := m.wallets[contractor.ID]; ok {
		wcopy := w
		contractor.Wallet = &wcopy
	}

	contract.Client = client
	contract.Contractor = contractor
	invoice.Contract = contract

	return &invoice, nil
}

func (m *inmemoryProvider) SetInvoicePaid(ctx context.Context, invoiceID uint, paidAt time.Time) error {
	invoice, ok := m.invoices[invoiceID]
	if !ok {
		return errors.New("invoice not found in database")
	}

	invoice.PaidAt = sql.NullTime{Time: paidAt, Valid: true}
	invoice.Status = entities.InvoiceStatusPaid
	m.invoices[invoiceID] = invoice
	return nil
}
