package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gigmarket/billing-service/internal/entities"
)

func (m *mysqlConnector) CreateInvoice(ctx context.Context, invoice *entities.Invoice) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	result := m.db.WithContext(tCtx).Omit("Contract").Create(invoice)

	return result.Error
}

func (m *mysqlConnector) GetInvoiceWithParties(ctx context.Context, id uint) (*entities.Invoice, error) {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	var invoice entities.Invoice
	res := m.db.WithContext(tCtx).
		Preload("Contract.Client.Wallet").
		Preload("Contract.Contractor.Wallet").
		First(&invoice, id)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}

	return &invoice, nil
}

func (m *mysqlConnector) SetInvoicePaid(ctx context.Context, invoiceID uint, paidAt time.Time) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	res := m.db.WithContext(tCtx).
		Model(&entities.Invoice{}).
		Where("id = ?", invoiceID).
		Updates(map[string]interface{}{
			"paid_at": sql.NullTime{Time: paidAt, Valid: true},
			"status":  entities.InvoiceStatusPaid,
		})

	return res.Error
}
