package v1invoices

import (
	"fmt"
	"time"

	"github.com/gigmarket/billing-service/internal/entities"
	"github.com/gigmarket/billing-service/internal/money"
)

const isoDateFormat = "2006-01-02"

func invoiceEntityFrom(dto Invoice) (*entities.Invoice, error) {
	date, err := parseIsoDate(dto.Date, "date")
	if err != nil {
		return nil, err
	}

	dueDate, err := parseIsoDate(dto.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	return &entities.Invoice{
		Number:       dto.Number,
		ContractID:   dto.ContractID,
		Date:         date,
		DueDate:      dueDate,
		Subtotal:     dto.Subtotal,
		VatRate:      dto.VatRate,
		DiscountRate: dto.DiscountRate,
		Status:       entities.InvoiceStatus(dto.Status),
	}, nil
}

func invoiceDtoFrom(invoice *entities.Invoice) Invoice {
	dto := Invoice{
		ID:           invoice.ID,
		Number:       invoice.Number,
		ContractID:   invoice.ContractID,
		Date:         invoice.Date.Format(isoDateFormat),
		DueDate:      invoice.DueDate.Format(isoDateFormat),
		Subtotal:     invoice.Subtotal,
		VatRate:      invoice.VatRate,
		DiscountRate: invoice.DiscountRate,
		Status:       string(invoice.Status),
	}

	if invoice.PaidAt.Valid {
		dto.PaidAt = invoice.PaidAt.Time.UTC().Format(time.RFC3339)
	}

	if total, err := money.InvoiceTotal(invoice.Subtotal, invoice.VatRate, invoice.DiscountRate); err == nil {
		dto.TotalAmount = money.Format(total)
	}

	return dto
}

func parseIsoDate(value string, field string) (time.Time, error) {
	parsed, err := time.Parse(isoDateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an ISO date (YYYY-MM-DD)", field)
	}

	return parsed, nil
}
