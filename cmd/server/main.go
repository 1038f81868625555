package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"weddingrsvp/internal/config"
	"weddingrsvp/internal/database"
	"weddingrsvp/internal/handlers"
	"weddingrsvp/internal/repository"
	"weddingrsvp/internal/security"
	"weddingrsvp/internal/service"
	"weddingrsvp/internal/sms"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	inviteRepo := repository.NewInviteRepository(db)

	// Initialize services
	tokens, err := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenDuration)
	if err != nil {
		log.Fatalf("Failed to initialize token issuer: %v", err)
	}
	authService := service.NewAuthService(userRepo, tokens)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.NotifyFromEmail, cfg.NotifyFromName, cfg.NotifyToEmail)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	sender := sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.TwilioMessagingServiceSID)
	inviteService := service.NewInviteService(inviteRepo, sender, cfg.SiteBaseURL)
	rsvpService := service.NewRSVPService(rsvpRepo, inviteService, emailService)

	// Seed the dashboard admin account
	if err := authService.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Printf("Warning: Failed to seed admin account: %v", err)
	}

	googleOAuth := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}

	// Initialize handlers
	limiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(authService, limiter, cfg.SiteBaseURL)
	authHandler := handlers.NewAuthHandler(authService, googleOAuth, cfg.OAuthRedirectBaseURL, cfg.SiteBaseURL)
	rsvpHandler := handlers.NewRSVPHandler(rsvpService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	trackHandler := handlers.NewTrackHandler(inviteService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/rsvps", middleware.RateLimit(rsvpHandler.Submit))
	mux.HandleFunc("POST /api/track/{event}", middleware.RateLimit(trackHandler.Track))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /api/auth/google/start", authHandler.StartGoogleOAuth)
	mux.HandleFunc("GET /api/auth/google/callback", authHandler.GoogleOAuthCallback)

	// Protected dashboard routes
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/rsvps", middleware.RequireAuth(rsvpHandler.List))
	mux.HandleFunc("GET /api/rsvps/stats", middleware.RequireAuth(rsvpHandler.Stats))
	mux.HandleFunc("POST /api/rsvps/{id}/approve", middleware.RequireAuth(rsvpHandler.Approve))
	mux.HandleFunc("PUT /api/rsvps/{id}", middleware.RequireAuth(rsvpHandler.Update))
	mux.HandleFunc("DELETE /api/rsvps/{id}", middleware.RequireAuth(rsvpHandler.Delete))

	mux.HandleFunc("GET /api/invites", middleware.RequireAuth(inviteHandler.List))
	mux.HandleFunc("POST /api/invites", middleware.RequireAuth(inviteHandler.Create))
	mux.HandleFunc("POST /api/invites/import", middleware.RequireAuth(inviteHandler.Import))
	mux.HandleFunc("GET /api/invites/stats", middleware.RequireAuth(inviteHandler.Stats))
	mux.HandleFunc("GET /api/invites/export", middleware.RequireAuth(inviteHandler.Export))
	mux.HandleFunc("GET /api/invites/template", middleware.RequireAuth(inviteHandler.Template))
	mux.HandleFunc("GET /api/invites/{id}/message", middleware.RequireAuth(inviteHandler.Message))
	mux.HandleFunc("POST /api/invites/{id}/send", middleware.RequireAuth(inviteHandler.Send))
	mux.HandleFunc("DELETE /api/invites/{id}", middleware.RequireAuth(inviteHandler.Delete))
	mux.HandleFunc("DELETE /api/invites", middleware.RequireAuth(inviteHandler.DeleteAll))

	// Wrap with CORS and logging middleware
	handler := handlers.Logging(middleware.CORS(mux))

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
