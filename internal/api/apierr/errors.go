package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skyfleet/starhunt/internal/chat"
	"github.com/skyfleet/starhunt/internal/model"
	"github.com/skyfleet/starhunt/internal/services/battle"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotRegistered      = "NOT_REGISTERED"
	CodeAlreadyRegistered  = "ALREADY_REGISTERED"
	CodeNoShipSelected     = "NO_SHIP_SELECTED"
	CodeAlreadySelected    = "ALREADY_SELECTED"
	CodeNotOwned           = "NOT_OWNED"
	CodeAlreadyOwned       = "ALREADY_OWNED"
	CodeNotAStarter        = "NOT_A_STARTER"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeOnCooldown         = "ON_COOLDOWN"
	CodeNoEncounterActive  = "NO_ENCOUNTER_ACTIVE"
	CodeEncounterActive    = "ENCOUNTER_ACTIVE"
	CodeBattleInProgress   = "BATTLE_IN_PROGRESS"
	CodeShipNotFound       = "SHIP_NOT_FOUND"
	CodeDirectiveTimeout   = "DIRECTIVE_TIMEOUT"
	CodeChannelUnavailable = "CHANNEL_UNAVAILABLE"
	CodeDataUnavailable    = "DATA_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrNotRegistered):
		return &httpError{http.StatusNotFound, APIError{CodeNotRegistered, "Participant is not registered"}}
	case errors.Is(err, model.ErrAlreadyRegistered):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyRegistered, "Participant is already registered"}}
	case errors.Is(err, model.ErrNoShipSelected):
		return &httpError{http.StatusConflict, APIError{CodeNoShipSelected, "No flagship selected"}}
	case errors.Is(err, model.ErrAlreadySelected):
		return &httpError{http.StatusConflict, APIError{CodeAlreadySelected, "A flagship is already selected"}}
	case errors.Is(err, model.ErrNotOwned):
		return &httpError{http.StatusConflict, APIError{CodeNotOwned, "Ship is not in your roster"}}
	case errors.Is(err, model.ErrAlreadyOwned):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyOwned, "Ship is already in your roster"}}
	case errors.Is(err, model.ErrNotAStarter):
		return &httpError{http.StatusConflict, APIError{CodeNotAStarter, "Ship is not available as a starter"}}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientFunds, "Insufficient credits"}}
	case errors.Is(err, model.ErrOnCooldown):
		return &httpError{http.StatusConflict, APIError{CodeOnCooldown, "Claim is on cooldown"}}
	case errors.Is(err, model.ErrNoEncounterActive):
		return &httpError{http.StatusNotFound, APIError{CodeNoEncounterActive, "No encounter is active"}}
	case errors.Is(err, model.ErrEncounterActive):
		return &httpError{http.StatusConflict, APIError{CodeEncounterActive, "An encounter is already active"}}
	case errors.Is(err, battle.ErrBattleInProgress):
		return &httpError{http.StatusConflict, APIError{CodeBattleInProgress, "A battle is already in progress"}}
	case errors.Is(err, model.ErrShipNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeShipNotFound, "Ship not found"}}
	case errors.Is(err, chat.ErrDirectiveTimeout):
		return &httpError{http.StatusRequestTimeout, APIError{CodeDirectiveTimeout, "Timed out waiting for a directive"}}
	case errors.Is(err, model.ErrChannelUnresolvable):
		return &httpError{http.StatusBadGateway, APIError{CodeChannelUnavailable, "Channel could not be resolved"}}
	case errors.Is(err, model.ErrDataUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDataUnavailable, "Persistent data is unavailable"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
