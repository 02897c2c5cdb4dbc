package v1invoices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/interaction"
	"github.com/gigmarket/billing-service/internal/logging"
	"github.com/gigmarket/billing-service/internal/restapi/common"
	"github.com/gigmarket/billing-service/internal/restapi/media"
)

type invoiceHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := invoiceHandler{
		interactor: i,
	}

	router.Post("/invoices", common.CreateHandler(
		handler.CreateInvoice,
		createInvoiceRequestHandler,
		createInvoiceResponseHandler,
	))

	router.Post("/invoices/{invoice_id}/pay", common.CreateHandler(
		handler.PayInvoice,
		payInvoiceRequestHandler,
		payInvoiceResponseHandler,
	))
}

// CreateInvoice issues an invoice against a contract. Issuing is available
// to logged in users and to service-to-service calls.
func (h *invoiceHandler) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest, logger logging.Logger) (*CreateInvoiceResponse, error) {
	session := interaction.NewSession(ctx)
	if !session.IsUser() && !session.IsAPITokenCall() {
		return nil, apierrors.NewForbidden("unable to determine the request permissions")
	}

	invoice, err := invoiceEntityFrom(req.Invoice)
	if err != nil {
		return nil, apierrors.NewBadRequest(err.Error())
	}

	created, err := h.interactor.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}

	return &CreateInvoiceResponse{Invoice: invoiceDtoFrom(created)}, nil
}

// PayInvoice settles the invoice from the session user's wallet. The acting
// user is always taken from the session, never from the request payload.
func (h *invoiceHandler) PayInvoice(ctx context.Context, req *PayInvoiceRequest, logger logging.Logger) (*PayInvoiceResponse, error) {
	session := interaction.NewSession(ctx)
	if !session.IsUser() {
		return nil, apierrors.NewForbidden("unable to determine the request permissions")
	}

	if err := h.interactor.PayInvoice(ctx, req.InvoiceID, session.UserID()); err != nil {
		return nil, err
	}

	return &PayInvoiceResponse{}, nil
}

func createInvoiceRequestHandler(r *http.Request) (*CreateInvoiceRequest, error) {
	var request CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&request.Invoice); err != nil {
		return nil, err
	}

	return &request, nil
}

func createInvoiceResponseHandler(ctx context.Context, res *CreateInvoiceResponse, w http.ResponseWriter) error {
	w.Header().Add(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(res)
}

func payInvoiceRequestHandler(r *http.Request) (*PayInvoiceRequest, error) {
	idStr := chi.URLParam(r, "invoice_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("invoice_id must be a positive integer")
	}

	return &PayInvoiceRequest{InvoiceID: uint(id)}, nil
}

func payInvoiceResponseHandler(ctx context.Context, res *PayInvoiceResponse, w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}
