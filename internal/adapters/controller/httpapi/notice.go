package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shingu-dev/club-server/internal/adapters/controller/httpapi/middlewares"
	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

const noticePageSize = 5

type noticeListResponse struct {
	Pinned  *entity.Notice  `json:"pinned"`
	Notices []entity.Notice `json:"notices"`
	Total   int64           `json:"total"`
}

func (h *Handler) listNotices(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	pinned, err := h.notices.Pinned(r.Context(), clubID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	notices, total, err := h.notices.Page(r.Context(), clubID, page, noticePageSize)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, noticeListResponse{Pinned: pinned, Notices: notices, Total: total})
}

type createNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) createNotice(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")

	var req createNoticeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	notice, err := h.notices.Create(r.Context(), callerID, clubID, req.Title, req.Content)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, notice)
}

func (h *Handler) togglePin(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")
	noticeID := chi.URLParam(r, "noticeID")

	if err := h.notices.TogglePin(r.Context(), callerID, clubID, noticeID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "toggled"})
}

func (h *Handler) deleteNotice(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")
	noticeID := chi.URLParam(r, "noticeID")

	if err := h.notices.Delete(r.Context(), callerID, clubID, noticeID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
