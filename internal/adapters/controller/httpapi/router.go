package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shingu-dev/club-server/internal/adapters/controller/httpapi/middlewares"
	"github.com/shingu-dev/club-server/internal/adapters/logger"
	"github.com/shingu-dev/club-server/internal/domain/service"
)

type Handler struct {
	identity   *service.IdentityService
	users      *service.UserService
	clubs      *service.ClubService
	membership *service.MembershipService
	notices    *service.NoticeService
	schedules  *service.ScheduleService
	log        *logger.Logger
}

func NewHandler(
	identity *service.IdentityService,
	users *service.UserService,
	clubs *service.ClubService,
	membership *service.MembershipService,
	notices *service.NoticeService,
	schedules *service.ScheduleService,
	log *logger.Logger,
) *Handler {
	return &Handler{
		identity:   identity,
		users:      users,
		clubs:      clubs,
		membership: membership,
		notices:    notices,
		schedules:  schedules,
		log:        log,
	}
}

// Router wires the API. Reads of the club directory, notices and
// schedules are public; everything touching identity or membership
// state requires a session.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup/code", h.requestSignupCode)
		r.Post("/auth/signup/verify", h.verifySignupCode)
		r.Post("/auth/signup", h.signUp)
		r.Post("/auth/signin", h.signIn)

		r.Get("/clubs", h.listClubs)
		r.Get("/clubs/{clubID}", h.getClub)
		r.Get("/clubs/{clubID}/notices", h.listNotices)
		r.Get("/clubs/{clubID}/schedules", h.listSchedules)
		r.Get("/clubs/{clubID}/schedules/{date}", h.listSchedulesByDate)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Auth(h.identity))

			r.Post("/auth/signout", h.signOut)

			r.Get("/me", h.getProfile)
			r.Put("/me", h.editProfile)
			r.Post("/me/password", h.changePassword)
			r.Delete("/me", h.deleteAccount)

			r.Post("/clubs", h.createClub)
			r.Put("/clubs/{clubID}", h.updateClub)

			r.Post("/clubs/{clubID}/applications", h.apply)
			r.Get("/clubs/{clubID}/applications", h.pendingApplications)
			r.Post("/applications/{applicationID}/approve", h.approve)
			r.Post("/applications/{applicationID}/reject", h.reject)

			r.Get("/clubs/{clubID}/members", h.listMembers)
			r.Patch("/clubs/{clubID}/members/{userID}/role", h.changeRole)
			r.Post("/clubs/{clubID}/members/{userID}/delegate", h.delegatePresident)
			r.Delete("/clubs/{clubID}/members/{userID}", h.removeMember)
			r.Delete("/clubs/{clubID}/membership", h.leave)

			r.Post("/clubs/{clubID}/notices", h.createNotice)
			r.Post("/clubs/{clubID}/notices/{noticeID}/pin", h.togglePin)
			r.Delete("/clubs/{clubID}/notices/{noticeID}", h.deleteNotice)

			r.Post("/clubs/{clubID}/schedules", h.createSchedule)
			r.Delete("/clubs/{clubID}/schedules/{scheduleID}", h.deleteSchedule)
		})
	})

	return r
}
