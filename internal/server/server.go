package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hiredesk/internal/config"
	"hiredesk/internal/handler"
	"hiredesk/internal/identity"
	"hiredesk/internal/middleware"
	"hiredesk/internal/model"
	"hiredesk/internal/repository"
	"hiredesk/internal/service"
	"hiredesk/pkg/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
}

// Repositories groups the collection-backed stores
type Repositories struct {
	Users             repository.IUserRepository
	AdminProfiles     repository.IAdminProfileRepository
	CandidateProfiles repository.ICandidateProfileRepository
	Documents         repository.ICandidateDocumentRepository
	Applications      repository.IApplicationRepository
}

// Services groups the operation layer
type Services struct {
	Auth          service.AuthService
	Accounts      service.AccountService
	Teardown      service.TeardownService
	Notifications service.NotificationService
}

// Handlers groups the HTTP surface
type Handlers struct {
	Auth         *handler.AuthHandler
	Account      *handler.AccountHandler
	Notification *handler.NotificationHandler
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	idp := identity.NewMongoProvider(db)
	repos := InitRepositories(db)
	services, err := InitServices(cfg, repos, idp)
	if err != nil {
		return nil, err
	}
	handlers := InitHandlers(services)

	if err := PopulateInitialData(cfg, repos, idp); err != nil {
		return nil, fmt.Errorf("failed to populate initial data: %w", err)
	}

	router := setupRouter(cfg, handlers)

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	slog.Info("hiredesk server running", "addr", s.cfg.Server.Address())
	return s.router.Run(s.cfg.Server.Address())
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:             repository.NewUserRepository(db),
		AdminProfiles:     repository.NewAdminProfileRepository(db),
		CandidateProfiles: repository.NewCandidateProfileRepository(db),
		Documents:         repository.NewCandidateDocumentRepository(db),
		Applications:      repository.NewApplicationRepository(db),
	}
}

func InitServices(cfg *config.Config, repos *Repositories, idp *identity.MongoProvider) (*Services, error) {
	mailer, err := newMailer(cfg)
	if err != nil {
		return nil, err
	}

	authorizer := service.NewAuthorizer(repos.Users)
	blobs := storage.NewDiskStore(cfg.Storage.Root)

	return &Services{
		Auth:     service.NewAuthService(idp, cfg.Auth.JWTSecret),
		Accounts: service.NewAccountService(authorizer, idp, repos.Users, repos.AdminProfiles, repos.CandidateProfiles),
		Teardown: service.NewTeardownService(authorizer, idp, repos.Users, repos.AdminProfiles,
			repos.CandidateProfiles, repos.Documents, repos.Applications, blobs),
		Notifications: service.NewNotificationService(authorizer, mailer, nil),
	}, nil
}

func newMailer(cfg *config.Config) (service.Mailer, error) {
	switch cfg.Mailer.Driver {
	case "ses":
		return service.NewSESMailer(cfg)
	case "log":
		return service.NewLogMailer(), nil
	case "smtp":
		return service.NewSMTPMailer(), nil
	default:
		return nil, fmt.Errorf("unknown mailer driver %q", cfg.Mailer.Driver)
	}
}

func InitHandlers(services *Services) *Handlers {
	return &Handlers{
		Auth:         handler.NewAuthHandler(services.Auth),
		Account:      handler.NewAccountHandler(services.Accounts, services.Teardown),
		Notification: handler.NewNotificationHandler(services.Notifications),
	}
}

// PopulateInitialData seeds a bootstrap admin account when one is configured
// and no admin exists yet. Without it a fresh deployment has no caller able
// to pass the admin guard.
func PopulateInitialData(cfg *config.Config, repos *Repositories, idp identity.Provider) error {
	if cfg.Bootstrap.AdminEmail == "" || cfg.Bootstrap.AdminPassword == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := repos.Users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	userID, err := idp.CreateUser(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword, true)
	if err != nil {
		return err
	}
	if err := repos.Users.Create(ctx, &model.UserRecord{
		ID:        userID,
		Email:     cfg.Bootstrap.AdminEmail,
		Role:      model.RoleAdmin,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	firstName, lastName := cfg.Bootstrap.AdminName, ""
	if parts := strings.Fields(cfg.Bootstrap.AdminName); len(parts) > 1 {
		firstName, lastName = parts[0], strings.Join(parts[1:], " ")
	}
	profile := &model.AdminProfile{
		UserID:      userID,
		FirstName:   firstName,
		LastName:    lastName,
		AccessLevel: "super",
		CreatedAt:   time.Now(),
	}
	if err := repos.AdminProfiles.Create(ctx, profile); err != nil {
		return err
	}
	if err := repos.Users.SetProfileID(ctx, userID, profile.ID.Hex()); err != nil {
		return err
	}

	slog.Info("seeded bootstrap admin", "email", cfg.Bootstrap.AdminEmail, "user_id", userID)
	return nil
}

func setupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	api.POST("/login", h.Auth.Login)

	// Callable operations resolve the caller from the bearer token; the
	// role authorizer rejects requests without one.
	fns := api.Group("/functions")
	fns.Use(middleware.Auth(cfg.Auth.JWTSecret))
	{
		fns.POST("/createAdmin", h.Account.CreateAdmin)
		fns.POST("/createCandidate", h.Account.CreateCandidate)
		fns.POST("/deleteUser", h.Account.DeleteUser)
		fns.POST("/deleteCandidate", h.Account.DeleteCandidate)

		fns.POST("/sendDocumentDenialEmail", h.Notification.SendDocumentDenial)
		fns.POST("/sendDocumentRequestEmail", h.Notification.SendDocumentRequest)
		fns.POST("/sendDocumentRequestRevocationEmail", h.Notification.SendDocumentRequestRevocation)
		fns.POST("/sendAdminDocumentUploadEmail", h.Notification.SendAdminDocumentUpload)
	}

	return r
}
