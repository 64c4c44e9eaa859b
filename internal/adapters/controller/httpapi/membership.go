package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shingu-dev/club-server/internal/adapters/controller/httpapi/middlewares"
	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type applyRequest struct {
	Intro string `json:"intro"`
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")

	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	application, err := h.membership.Apply(r.Context(), callerID, clubID, req.Intro)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, application)
}

func (h *Handler) pendingApplications(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")

	applications, err := h.membership.PendingApplications(r.Context(), callerID, clubID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, applications)
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	if err := h.membership.Approve(r.Context(), callerID, chi.URLParam(r, "applicationID")); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	if err := h.membership.Reject(r.Context(), callerID, chi.URLParam(r, "applicationID")); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")

	members, err := h.membership.Members(r.Context(), callerID, clubID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

type changeRoleRequest struct {
	Role entity.Role `json:"role"`
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")
	userID := chi.URLParam(r, "userID")

	var req changeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	if err := h.membership.ChangeRole(r.Context(), callerID, clubID, userID, req.Role); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "changed"})
}

func (h *Handler) delegatePresident(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")
	userID := chi.URLParam(r, "userID")

	if err := h.membership.DelegatePresident(r.Context(), callerID, clubID, userID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "delegated"})
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")
	userID := chi.URLParam(r, "userID")

	if err := h.membership.RemoveMember(r.Context(), callerID, clubID, userID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) leave(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")

	if err := h.membership.Leave(r.Context(), callerID, clubID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}
