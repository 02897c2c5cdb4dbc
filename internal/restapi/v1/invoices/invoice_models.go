package v1invoices

// request and response types
type (
	// CreateInvoiceRequest contains all information to issue a new invoice
	// against a contract.
	CreateInvoiceRequest struct {
		Invoice Invoice `json:"invoice"`
	}

	// CreateInvoiceResponse contains the invoice which was created through
	// the request parameters
	CreateInvoiceResponse struct {
		Invoice Invoice `json:"invoice"`
	}

	// PayInvoiceRequest identifies the invoice the session user wants to
	// settle from their wallet.
	PayInvoiceRequest struct {
		InvoiceID uint
	}

	// PayInvoiceResponse is an empty response as a successful payment yields
	// no payload
	PayInvoiceResponse struct{}
)

type Invoice struct {
	ID           uint    `json:"id,omitempty"`
	Number       string  `json:"number"`
	ContractID   uint    `json:"contract_id"`
	Date         string  `json:"date"`
	DueDate      string  `json:"due_date"`
	Subtotal     string  `json:"subtotal"`
	VatRate      float64 `json:"vat_rate"`
	DiscountRate float64 `json:"discount_rate"`
	Status       string  `json:"status,omitempty"`
	PaidAt       string  `json:"paid_at,omitempty"`
	TotalAmount  string  `json:"total_amount,omitempty"`
}
