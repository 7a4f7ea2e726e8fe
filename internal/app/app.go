package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/stablebook/stablebook/internal/config"
	"github.com/stablebook/stablebook/internal/db"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/service"
	"github.com/stablebook/stablebook/internal/storage"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	RiderRepo       repository.RiderRepository
	AuthService     *service.AuthService
	EmailService    *service.EmailService
	JournalService  *service.JournalService
	ReviewService   *service.ReviewService
	CalendarService *service.CalendarService
	GoalService     *service.GoalService
	RosterService   *service.RosterService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	horseRepository := repository.NewHorseRepository(database)
	riderRepository := repository.NewRiderRepository(database)
	entryRepository := repository.NewEntryRepository(database)
	commentRepository := repository.NewCommentRepository(database)
	eventRepository := repository.NewEventRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.EmailProvider,
		cfg.ResendAPIKey,
		service.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
		},
		cfg.EmailFrom,
		cfg.TrainerEmail,
	)

	authenticator := service.NewSharedSecretAuthenticator(cfg.TrainerPassword, cfg.AdminPassword)
	authService := service.NewAuthService(
		riderRepository,
		authenticator,
		cfg.SessionSecret,
		cfg.SessionExpiry,
		cfg.IsProduction(),
	)
	journalService := service.NewJournalService(entryRepository, commentRepository, fileStorage, emailService)
	reviewService := service.NewReviewService(entryRepository, commentRepository, fileStorage)
	calendarService := service.NewCalendarService(eventRepository)
	goalService := service.NewGoalService(goalRepository)
	rosterService := service.NewRosterService(horseRepository, riderRepository, fileStorage)

	return &App{
		Cfg:             cfg,
		DB:              database,
		RiderRepo:       riderRepository,
		AuthService:     authService,
		EmailService:    emailService,
		JournalService:  journalService,
		ReviewService:   reviewService,
		CalendarService: calendarService,
		GoalService:     goalService,
		RosterService:   rosterService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
