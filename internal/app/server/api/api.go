package api

import (
	healthAPI "qrvault/internal/app/server/api/http/health"
	"qrvault/internal/app/server/api/http/middleware"
	"qrvault/internal/app/server/api/http/middleware/auth"
	"qrvault/internal/app/server/api/http/middleware/logger"
	qrcodeAPI "qrvault/internal/app/server/api/http/qrcode"
	userAPI "qrvault/internal/app/server/api/http/user"
	"qrvault/internal/config"
	"qrvault/internal/domain/qrcode"
	"qrvault/internal/domain/session"
	"qrvault/internal/domain/user"
	"qrvault/internal/encoder"
	"qrvault/internal/infrastructure/storage/postgres"
	"qrvault/internal/notifier/mail"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	QRCode *qrcodeAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("QRVault API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.QRCode.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewPasswordValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	qrRepo := postgres.NewQRCodeRepository(storage, log)
	qrEncoder := encoder.New(cfg.QR.ImageSize, cfg.QR.RecoveryLevel)
	mailNotifier := mail.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, log)
	qrService := qrcode.NewService(qrRepo, qrEncoder, mailNotifier, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	qrHandler := qrcodeAPI.NewHandler(qrService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		QRCode: qrHandler,
	}
}
