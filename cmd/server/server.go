package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/shingu-dev/club-server/internal/adapters/config"
	"github.com/shingu-dev/club-server/internal/adapters/controller/httpapi"
	"github.com/shingu-dev/club-server/internal/adapters/database/mongodb"
	"github.com/shingu-dev/club-server/internal/adapters/logger"
	"github.com/shingu-dev/club-server/internal/domain/service"
	"github.com/shingu-dev/club-server/pkg/smtp"
)

type Server struct {
	httpServer *http.Server
	log        *logger.Logger
}

func New(cfg *config.Config) (*Server, error) {
	log, err := logger.Named("http")
	if err != nil {
		return nil, err
	}
	membershipLog, err := logger.Named("membership")
	if err != nil {
		return nil, err
	}

	userStorage := mongodb.NewUserStorage(cfg.Database)
	clubStorage := mongodb.NewClubStorage(cfg.Database)
	memberStorage := mongodb.NewMemberStorage(cfg.Database)
	applicationStorage := mongodb.NewApplicationStorage(cfg.Database)
	noticeStorage := mongodb.NewNoticeStorage(cfg.Database)
	scheduleStorage := mongodb.NewScheduleStorage(cfg.Database)
	credentialStorage := mongodb.NewCredentialStorage(cfg.Database)

	smtpClient := smtp.NewClient(cfg.SMTPDialer)

	identityService := service.NewIdentityService(
		credentialStorage,
		cfg.Redis.Sessions,
		cfg.Redis.Codes,
		userStorage,
		smtpClient,
		viper.GetString("service.auth.jwt-secret"),
		viper.GetDuration("service.auth.session-ttl"),
	)
	userService := service.NewUserService(userStorage, memberStorage)
	clubService := service.NewClubService(clubStorage, memberStorage)
	membershipService := service.NewMembershipService(
		memberStorage,
		applicationStorage,
		userStorage,
		clubStorage,
		membershipLog,
	)
	noticeService := service.NewNoticeService(noticeStorage, memberStorage)
	scheduleService := service.NewScheduleService(scheduleStorage, memberStorage)

	handler := httpapi.NewHandler(
		identityService,
		userService,
		clubService,
		membershipService,
		noticeService,
		scheduleService,
		log,
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              config.ListenAddr(),
			Handler:           handler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}, nil
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Start() {
	go func() {
		s.log.Infof("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Panicf("http server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Errorf("shutdown: %v", err)
	}
	s.log.Info("server stopped")
}
