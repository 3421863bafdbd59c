package router

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "microdose-web/docs"
	"microdose-web/internal/adapters/auth/remote"
	"microdose-web/internal/adapters/backend/cached"
	"microdose-web/internal/adapters/backend/rest"
	mem "microdose-web/internal/adapters/storage/memory"
	pg "microdose-web/internal/adapters/storage/postgres"
	"microdose-web/internal/domain/analytics"
	"microdose-web/internal/domain/calendar"
	"microdose-web/internal/domain/daily"
	"microdose-web/internal/domain/dashboard"
	"microdose-web/internal/domain/notifications"
	"microdose-web/internal/domain/pages"
	"microdose-web/internal/domain/profile"
	"microdose-web/internal/domain/protocols"
	"microdose-web/internal/domain/session"
	"microdose-web/internal/middleware"
	"microdose-web/internal/platform/httpclient"
	"microdose-web/internal/platform/logger"
	"microdose-web/internal/ports/auth"
	"microdose-web/internal/view"
)

type Options struct {
	// Backend remoto. Si BaseURL viene vacío se lee API_BASE_URL.
	APIBaseURL string
	APITimeout time.Duration

	Authn auth.Authenticator // puede ser nil (modo dev: acepta cualquier login)

	// Repos inyectables para tests. Si vienen nil se construyen los
	// adaptadores REST contra APIBaseURL.
	Protocols     protocols.Repository
	Notifications notifications.Repository
	Analytics     analytics.Repository
	Profile       profile.Repository

	// Opcional: si viene SESSION_DSN usa Postgres para sesiones. Si no,
	// in-memory.
	Sessions   session.Repository
	SessionTTL time.Duration

	Log logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	rnd, err := view.New(log)
	if err != nil {
		return nil, err
	}

	// Adaptadores contra el backend remoto
	if opts.Protocols == nil || opts.Notifications == nil ||
		opts.Analytics == nil || opts.Profile == nil || opts.Authn == nil {
		baseURL := opts.APIBaseURL
		if baseURL == "" {
			baseURL = os.Getenv("API_BASE_URL")
		}
		if baseURL != "" {
			hc, err := httpclient.New(baseURL, opts.APITimeout)
			if err != nil {
				return nil, err
			}
			api := rest.NewClient(hc)
			if opts.Protocols == nil {
				opts.Protocols = cached.NewProtocolsCache(rest.NewProtocolsRepo(api), cached.DefaultTTL)
			}
			if opts.Notifications == nil {
				opts.Notifications = rest.NewNotificationsRepo(api)
			}
			if opts.Analytics == nil {
				opts.Analytics = rest.NewAnalyticsRepo(api)
			}
			if opts.Profile == nil {
				opts.Profile = rest.NewProfileRepo(api)
			}
			if opts.Authn == nil {
				opts.Authn = remote.NewAuthenticator(hc)
			}
		}
	}

	// Sin backend configurado: repos in-memory (modo dev). Authn queda nil
	// y el login acepta cualquier credencial.
	if opts.Protocols == nil {
		opts.Protocols = mem.NewProtocolsRepo()
	}
	if opts.Notifications == nil {
		opts.Notifications = mem.NewNotificationsRepo()
	}
	if opts.Analytics == nil {
		opts.Analytics = mem.NewAnalyticsRepo()
	}
	if opts.Profile == nil {
		opts.Profile = mem.NewProfileRepo()
	}

	// Sesiones: Postgres por env, si no in-memory
	sessionsRepo := opts.Sessions
	if sessionsRepo == nil {
		if dsn := os.Getenv("SESSION_DSN"); dsn != "" {
			db, err := pg.Open(dsn)
			if err != nil {
				log.Warn("session store: postgres unavailable, using memory", map[string]any{"err": err.Error()})
			} else {
				sessionsRepo = pg.NewSessionsRepo(db)
			}
		}
	}
	if sessionsRepo == nil {
		sessionsRepo = mem.NewSessionsRepo()
	}

	// Services por módulo
	sessionSvc := session.NewService(sessionsRepo, opts.SessionTTL)
	protocolsSvc := protocols.NewService(opts.Protocols, log)
	notificationsSvc := notifications.NewService(opts.Notifications)
	analyticsSvc := analytics.NewService(opts.Analytics)
	profileSvc := profile.NewService(opts.Profile)

	devMode := opts.Authn == nil
	resolve := func(ctx context.Context, id string) (auth.Claims, string, error) {
		s, err := sessionSvc.Resolve(ctx, id)
		if err != nil {
			return auth.Claims{}, "", err
		}
		return auth.Claims{UserID: s.UserID, Email: s.Email, DisplayName: s.DisplayName}, s.APIToken, nil
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AuthContext(resolve, devMode))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/static/*", view.StaticHandler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Páginas públicas
	pages.RegisterPublicRoutes(r, rnd)

	// Login y signup: solo sin sesión
	r.Group(func(r chi.Router) {
		r.Use(middleware.PublicOnly)
		session.RegisterPublicRoutes(r, rnd, sessionSvc, opts.Authn)
	})

	// Todo lo demás requiere sesión
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		session.RegisterPrivateRoutes(r, sessionSvc, opts.Authn)
		dashboard.RegisterRoutes(r, rnd, protocolsSvc, notificationsSvc, analyticsSvc)
		protocols.RegisterRoutes(r, rnd, protocolsSvc)
		calendar.RegisterRoutes(r, rnd, protocolsSvc, log)
		daily.RegisterRoutes(r, rnd, protocolsSvc)
		analytics.RegisterRoutes(r, rnd, analyticsSvc)
		notifications.RegisterRoutes(r, notificationsSvc)
		pages.RegisterPrivateRoutes(r, rnd, profileSvc)
	})

	// Feed JSON: mismas reglas de auth pero respuesta 401 en vez de redirect
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuthJSON)

		protocols.RegisterAPIRoutes(r, protocolsSvc)
		calendar.RegisterAPIRoutes(r, protocolsSvc, log)
		notifications.RegisterAPIRoutes(r, notificationsSvc)
	})

	// Rutas viejas que siguen circulando en links guardados
	redirects := map[string]string{
		"/protocols": "/dashboard/protocols",
		"/calendar":  "/dashboard/calendar",
		"/analytics": "/dashboard/analytics",
		"/community": "/community/posts",
	}
	for from, to := range redirects {
		target := to
		r.Get(from, func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}

	// Cualquier otra cosa cae en el landing
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return r, nil
}
