package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeError maps domain errors onto HTTP statuses. Store failures and
// partial multi-write failures come through as 500 after being logged
// at the service layer.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errorz.Unauthenticated), errors.Is(err, errorz.InvalidCredential):
		writeJSON(w, http.StatusUnauthorized, errBody(err))
	case errors.Is(err, errorz.Forbidden):
		writeJSON(w, http.StatusForbidden, errBody(err))
	case errors.Is(err, errorz.NotFound):
		writeJSON(w, http.StatusNotFound, errBody(err))
	case errors.Is(err, errorz.AlreadyAffiliated), errors.Is(err, errorz.InvalidTransition):
		writeJSON(w, http.StatusConflict, errBody(err))
	case errors.Is(err, errorz.IncompleteProfile):
		writeJSON(w, http.StatusUnprocessableEntity, errBody(err))
	case errors.Is(err, errorz.Validation), errors.Is(err, errorz.InvalidCode):
		writeJSON(w, http.StatusBadRequest, errBody(err))
	default:
		h.log.Errorf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func errBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}
