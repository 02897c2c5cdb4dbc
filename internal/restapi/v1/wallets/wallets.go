package v1wallets

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

type walletHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := walletHandler{
		interactor: i,
	}

	router.Get("/wallets/me", common.CreateHandler(
		handler.GetMyWallet,
		getMyWalletRequestHandler,
		getMyWalletResponseHandler,
	))

	router.Post("/wallets", common.CreateHandler(
		handler.CreateWallet,
		createWalletRequestHandler,
		createWalletResponseHandler,
	))
}

func (h *walletHandler) GetMyWallet(ctx context.Context, req *GetMyWalletRequest, logger logging.Logger) (*GetMyWalletResponse, error) {
	session := interaction.NewSession(ctx)
	if !session.IsUser() {
		return nil, apierrors.NewForbidden("unable to determine the request permissions")
	}

	wallet, err := h.interactor.GetWalletForUser(ctx, session.UserID())
	if err != nil {
		return nil, err
	}

	return &GetMyWalletResponse{Wallet: Wallet{
		ID:      wallet.ID,
		UserID:  wallet.UserID,
		Balance: wallet.Balance,
	}}, nil
}

// CreateWallet configures and funds a wallet. A logged in user may only
// create their own wallet; a service-to-service call may create one for any
// user, which is how initial funding works.
func (h *walletHandler) CreateWallet(ctx context.Context, req *CreateWalletRequest, logger logging.Logger) (*CreateWalletResponse, error) {
	session := interaction.NewSession(ctx)

	userID := req.UserID
	if session.IsUser() {
		userID = session.UserID()
	} else if !session.IsAPITokenCall() {
		return nil, apierrors.NewForbidden("unable to determine the request permissions")
	}

	if userID == 0 {
		return nil, apierrors.NewBadRequest("user_id must be a positive integer")
	}

	wallet, err := h.interactor.CreateWallet(ctx, userID, req.InitialBalance)
	if err != nil {
		return nil, err
	}

	return &CreateWalletResponse{Wallet: Wallet{
		ID:      wallet.ID,
		UserID:  wallet.UserID,
		Balance: wallet.Balance,
	}}, nil
}

func getMyWalletRequestHandler(r *http.Request) (*GetMyWalletRequest, error) {
	return &GetMyWalletRequest{}, nil
}

func getMyWalletResponseHandler(ctx context.Context, res *GetMyWalletResponse, w http.ResponseWriter) error {
	w.Header().Add(headers.ContentType, media.ContentTypeApplicationJson)
	return json.NewEncoder(w).Encode(res)
}

func createWalletRequestHandler(r *http.Request) (*CreateWalletRequest, error) {
	var request CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}

	return &request, nil
}

func createWalletResponseHandler(ctx context.Context, res *CreateWalletResponse, w http.ResponseWriter) error {
	w.Header().Add(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(res)
}
