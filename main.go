package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tamanh-his/hisadmin/authenticator"
	"github.com/tamanh-his/hisadmin/config"
	"github.com/tamanh-his/hisadmin/controllers"
	"github.com/tamanh-his/hisadmin/database"
	"github.com/tamanh-his/hisadmin/mapping"
	authmiddleware "github.com/tamanh-his/hisadmin/middleware"
	"github.com/tamanh-his/hisadmin/repositories"
	"github.com/tamanh-his/hisadmin/services"
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	// Initialize database
	if err := database.InitializeDatabase(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services. The department code table is read-only and
	// built once here.
	srvs := services.NewServices(repos, mapping.DefaultDeptCodes(), cfg.VerifyPassword)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Optional OIDC SSO provider
	var auth authenticator.Provider
	if cfg.OIDCEnabled() {
		var err error
		auth, err = authenticator.NewOpenIDProvider(authenticator.OpenIDConfig{
			Issuer:       cfg.OIDCIssuer,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			CallbackURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize OIDC provider: %v", err)
		}
	}

	// Set up router
	r, err := setupRouter(ctrl, auth, cfg)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	log.Printf("hisadmin starting on port %s (database: %s)", cfg.Port, cfg.DBPath)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auth authenticator.Provider, cfg config.Config) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// Session middleware: server-side store keyed by an opaque cookie,
	// 24 hour lifetime by default
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "his_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     cfg.SessionLifetime,
		Maxlifetime:    cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static/"))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Auth.LoginForm)
	r.Post("/login", ctrl.Auth.Login)
	r.Get("/logout", ctrl.Auth.Logout)

	if auth != nil {
		r.Get("/sso/login", ctrl.Auth.SSOLogin(auth))
		r.Get("/callback", ctrl.Auth.Callback(auth))
	}

	// Read-only lookups, no mutation and no audit entries
	r.Get("/get-tinh", ctrl.Patient.GetProvinces)
	r.Get("/get-huyen/{ma_tinh}", ctrl.Patient.GetDistricts)
	r.Get("/get-xa/{ma_huyen}", ctrl.Patient.GetWards)
	r.Post("/search-pid", ctrl.Patient.SearchPID)
	r.Get("/get-benhpam", ctrl.Order.GetSpecimenTypes)
	r.Post("/search-chidinh", ctrl.Order.SearchOrders)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "hisadmin"}`)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireSession)

		r.Get("/", ctrl.Pages.Index)
		r.Get("/menu-item-1", ctrl.Pages.RoomAssignments)
		r.Get("/menu-item-2", ctrl.Pages.PatientAddresses)
		r.Get("/menu-item-3", ctrl.Pages.Specimens)

		// Mutations: each one runs the audit-logged update workflow
		r.Post("/update-status", ctrl.Room.UpdateStatus)
		r.Post("/update-btdbn", ctrl.Patient.UpdateAddress)
		r.Post("/update-chidinh-benhpam", ctrl.Order.UpdateSpecimen)
	})

	return r, nil
}
