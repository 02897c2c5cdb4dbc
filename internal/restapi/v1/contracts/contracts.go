package v1contracts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/interaction"
	"github.com/gigmarket/billing-service/internal/logging"
	"github.com/gigmarket/billing-service/internal/restapi/common"
	"github.com/gigmarket/billing-service/internal/restapi/media"
)

type contractHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := contractHandler{
		interactor: i,
	}

	router.Get("/contracts", common.CreateHandler(
		handler.ListContracts,
		listContractsRequestHandler,
		listContractsResponseHandler,
	))

	router.Post("/contracts", common.CreateHandler(
		handler.CreateContract,
		createContractRequestHandler,
		createContractResponseHandler,
	))
}

func (h *contractHandler) ListContracts(ctx context.Context, req *ListContractsRequest, logger logging.Logger) (*ListContractsResponse, error) {
	session := interaction.NewSession(ctx)
	if !session.IsUser() {
		return nil, apierrors.NewForbidden("unable to determine the request permissions")
	}

	contracts, err := h.interactor.GetContractsForUser(ctx, session.UserID())
	if err != nil {
		return nil, err
	}

	response := ListContractsResponse{
		Contracts: make([]Contract, 0, len(contracts)),
	}
	for i := range contracts {
		response.Contracts = append(response.Contracts, contractDtoFrom(&contracts[i]))
	}

	return &response, nil
}

// CreateContract proposes a contract to a client. Only a logged in user may
// create one and they always become the contractor.
func (h *contractHandler) CreateContract(ctx context.Context, req *CreateContractRequest, logger logging.Logger) (*CreateContractResponse, error) {
	session := interaction.NewSession(ctx)
	if !session.IsUser() {
		return nil, apierrors.NewForbidden("unable to determine the request permissions")
	}

	contract, err := contractEntityFrom(req.Contract, session.UserID())
	if err != nil {
		return nil, apierrors.NewBadRequest(err.Error())
	}

	created, err := h.interactor.CreateContract(ctx, contract)
	if err != nil {
		return nil, err
	}

	return &CreateContractResponse{Contract: contractDtoFrom(created)}, nil
}

func listContractsRequestHandler(r *http.Request) (*ListContractsRequest, error) {
	return &ListContractsRequest{}, nil
}

func listContractsResponseHandler(ctx context.Context, res *ListContractsResponse, w http.ResponseWriter) error {
	w.Header().Add(headers.ContentType, media.ContentTypeApplicationJson)
	return json.NewEncoder(w).Encode(res)
}

func createContractRequestHandler(r *http.Request) (*CreateContractRequest, error) {
	var request CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&request.Contract); err != nil {
		return nil, err
	}

	return &request, nil
}

func createContractResponseHandler(ctx context.Context, res *CreateContractResponse, w http.ResponseWriter) error {
	w.Header().Add(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(res)
}
