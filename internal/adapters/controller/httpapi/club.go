package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shingu-dev/club-server/internal/adapters/controller/httpapi/middlewares"
	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
	"github.com/shingu-dev/club-server/internal/domain/utils"
	"github.com/shingu-dev/club-server/internal/domain/utils/validator"
)

const clubPageSize = 8

type clubListResponse struct {
	Clubs []entity.Club `json:"clubs"`
	Total int64         `json:"total"`
}

func (h *Handler) listClubs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	clubs, err := h.clubs.GetWithPagination(r.Context(), (page-1)*clubPageSize, clubPageSize, "name")
	if err != nil {
		h.writeError(w, err)
		return
	}
	total, err := h.clubs.Count(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubListResponse{Clubs: clubs, Total: total})
}

func (h *Handler) getClub(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubs.Get(r.Context(), chi.URLParam(r, "clubID"))
	if err != nil {
		h.writeError(w, errorz.NotFound)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

// createClub is reserved for directory administrators seeding clubs;
// club content is otherwise maintained by each club's president.
func (h *Handler) createClub(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	if !utils.IsAdmin(callerID) {
		h.writeError(w, errorz.Forbidden)
		return
	}
	var club entity.Club
	if err := decodeJSON(r, &club); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	if !validator.ClubName(club.Name, nil) {
		h.writeError(w, errorz.Validation)
		return
	}
	created, err := h.clubs.Create(r.Context(), &club)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateClub(w http.ResponseWriter, r *http.Request) {
	callerID := middlewares.GetCallerID(r.Context())
	clubID := chi.URLParam(r, "clubID")

	var update dto.ClubUpdate
	if err := decodeJSON(r, &update); err != nil {
		h.writeError(w, errorz.Validation)
		return
	}
	if !validator.ClubName(update.Name, nil) ||
		!validator.ClubShortDesc(update.ShortDesc, nil) ||
		!validator.ClubDescription(update.Description, nil) {
		h.writeError(w, errorz.Validation)
		return
	}
	if err := h.clubs.UpdateInfo(r.Context(), callerID, clubID, update); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
