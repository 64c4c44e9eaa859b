package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shingu-dev/club-server/internal/adapters/controller/httpapi/middlewares"
	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
)

func (h *Handler) listSchedules(w http.ResponseWriter, r *http.Request) {
	entries, err := h.schedules.GetByClubID(r.Context(), chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) listSchedulesByDate(w http.ResponseWriter, r *http.Request) {
	entries, err := h.schedules.GetByDate(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

type createScheduleRequest struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) createSchedule(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")

	var req createScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	entry, err := h.schedules.Create(r.Context(), callerID, clubID, req.Date, req.Title, req.Content)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) deleteSchedule(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")
	scheduleID := chi.URLParam(r, "scheduleID")

	if err := h.schedules.Delete(r.Context(), callerID, clubID, scheduleID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
