package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mwhite/phraseparty/internal/model"
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
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeNameTaken          = "NAME_TAKEN"
	CodeDuplicateTeam      = "DUPLICATE_TEAM"
	CodeDuplicatePhrase    = "DUPLICATE_PHRASE"
	CodeRegistrationClosed = "REGISTRATION_CLOSED"
	CodeAlreadySubmitted   = "ALREADY_SUBMITTED"
	CodeSetupComplete      = "SETUP_COMPLETE"
	CodeTurnNotReady       = "TURN_NOT_READY"
	CodeNotLeader          = "NOT_LEADER"
	CodeNotNextPlayer      = "NOT_NEXT_PLAYER"
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

// toHTTPError converts an error to an httpError. Model errors keep their own
// message text, which carries the detail (ids, names, expected counts) that
// the lifecycle controller wrapped in.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	code, status := classify(err)
	if code == CodeInternalError {
		// Never leak internal error details to clients
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
	return &httpError{status, APIError{code, err.Error()}}
}

func classify(err error) (string, int) {
	switch {
	// Not found
	case errors.Is(err, model.ErrGameNotFound):
		return CodeGameNotFound, http.StatusNotFound
	case errors.Is(err, model.ErrTeamNotFound):
		return CodeTeamNotFound, http.StatusNotFound
	case errors.Is(err, model.ErrPlayerNotFound):
		return CodePlayerNotFound, http.StatusNotFound

	// Invalid input
	case errors.Is(err, model.ErrInvalidSettings),
		errors.Is(err, model.ErrNoTeams),
		errors.Is(err, model.ErrWrongPhraseCount),
		errors.Is(err, model.ErrEmptyPhrase),
		errors.Is(err, model.ErrPhraseTooLong),
		errors.Is(err, model.ErrPhrasesMissing):
		return CodeInvalidRequest, http.StatusBadRequest

	// Conflicts
	case errors.Is(err, model.ErrPlayerNameTaken):
		return CodeNameTaken, http.StatusConflict
	case errors.Is(err, model.ErrDuplicateTeam):
		return CodeDuplicateTeam, http.StatusConflict
	case errors.Is(err, model.ErrDuplicatePhrase):
		return CodeDuplicatePhrase, http.StatusConflict

	// Invalid state
	case errors.Is(err, model.ErrRegistrationClosed):
		return CodeRegistrationClosed, http.StatusConflict
	case errors.Is(err, model.ErrAlreadySubmitted):
		return CodeAlreadySubmitted, http.StatusConflict
	case errors.Is(err, model.ErrSetupComplete):
		return CodeSetupComplete, http.StatusConflict
	case errors.Is(err, model.ErrTurnNotReady):
		return CodeTurnNotReady, http.StatusConflict

	// Forbidden
	case errors.Is(err, model.ErrNotLeader):
		return CodeNotLeader, http.StatusForbidden
	case errors.Is(err, model.ErrNotNextPlayer):
		return CodeNotNextPlayer, http.StatusForbidden

	default:
		return CodeInternalError, http.StatusInternalServerError
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
