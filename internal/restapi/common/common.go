package common

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt/v4"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/logging"
)

type (
	CtxKeyRequestID struct{}
	CtxKeyToken     struct{}
	CtxKeyAPIKey    struct{}
	CtxKeyClaims    struct{}
)

type GlobalClaims struct {
	Name  string `json:"name"`
	EMail string `json:"email"`
}

type CustomClaims struct {
	Global GlobalClaims `json:"global"`
}

type AllClaims struct {
	jwt.RegisteredClaims
	CustomClaims
}

func EncodeToJSON(w http.ResponseWriter, obj interface{}, logger logging.Logger) {
	enc := json.NewEncoder(w)

	if obj != nil {
		err := enc.Encode(obj)

		if err != nil {
			logger.Error("Could not encode response. [error]: %v", err)
		}
	}
}

// SendErrorResponse maps a typed error from the interaction layer to its
// status code and writes the APIError envelope. Errors that carry no status
// are reported as an internal server error without leaking their text.
func SendErrorResponse(w http.ResponseWriter, reqID string, logger logging.Logger, err error) {
	status := apierrors.AsAPIStatus(err)
	if status == nil {
		logger.Error("An unexpected error occurred during the request. [error]: %v", err)
		SendResponseWithStatusAndMessage(w, http.StatusInternalServerError, reqID, "unexpected error", logger, "")
		return
	}

	SendResponseWithStatusAndMessage(w, status.Status().Code, reqID, status.Status().Message, logger, status.Status().Details)
}

func SendUnauthorizedResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusUnauthorized, reqID, "authorization required", logger, details)
}

func SendBadRequestResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusBadRequest, reqID, "invalid request", logger, details)
}

func SendInternalServerError(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusInternalServerError, reqID, "unexpected error", logger, details)
}

func SendResponseWithStatusAndMessage(w http.ResponseWriter, status int, reqID string, message string, logger logging.Logger, details string) {
	if reqID == "" {
		logger.Debug("request id is empty")
	}

	if details != "" {
		logger.Debug("Request was not successful: [error]: %s", details)
	}

	w.WriteHeader(status)

	apiErr := NewAPIError(reqID, message, details)
	EncodeToJSON(w, apiErr, logger)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "00000000"
	}
	if reqID, ok := ctx.Value(CtxKeyRequestID{}).(string); ok {
		return reqID
	}
	return "ffffffff"
}
