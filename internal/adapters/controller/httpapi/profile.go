package httpapi

import (
	"net/http"

	"github.com/shingu-dev/club-server/internal/adapters/controller/httpapi/middlewares"
	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type profileResponse struct {
	*entity.UserProfile
	MyClubName string `json:"myClubName,omitempty"`
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	user, err := h.users.Get(r.Context(), callerID)
	if err != nil {
		h.writeError(w, errorz.NotFound)
		return
	}

	resp := profileResponse{UserProfile: user}
	if user.MyClubStatus == entity.ClubStatusApproved && user.MyClubID != "" {
		if club, err := h.clubs.Get(r.Context(), user.MyClubID); err == nil {
			resp.MyClubName = club.Name
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	var update dto.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	if err := h.users.EditProfile(r.Context(), callerID, update); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	if err := h.identity.ChangePassword(r.Context(), callerID, req.CurrentPassword, req.NewPassword); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "changed"})
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	var req deleteAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	if err := h.identity.DeleteAccount(r.Context(), callerID, req.Password, middlewares.BearerToken(r)); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
