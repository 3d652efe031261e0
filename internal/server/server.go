// Package server wires the HTTP surface: routing, middleware, session
// handling, and the HTML page handlers.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/middleware"
	"skillswap/internal/repository"
	"skillswap/internal/service"
	"skillswap/internal/session"
	"skillswap/views"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	sessions       *session.Manager
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
	swapRepo  repository.SwapRepository

	authService      *service.AuthService
	skillService     *service.SkillService
	discoveryService *service.DiscoveryService
	swapService      *service.SwapService
}

// NewServer creates a server instance, connecting the database and Redis
// from configuration.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisClient := connectRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this with an in-memory database and no Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	var store session.Store
	if redisClient != nil {
		store = session.NewRedisStore(redisClient)
	} else {
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(cfg.SessionSecret,
		time.Duration(cfg.SessionTTLHours)*time.Hour, store)

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	swapRepo := repository.NewSwapRepository(db)

	// Prometheus collectors register globally, so a second server in the
	// same process would panic. Tests build many servers and skip metrics.
	var prom *fiberprometheus.FiberPrometheus
	if cfg.Env != "test" {
		prom = fiberprometheus.New("skillswap")
	}

	return &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		sessions:         sessions,
		promMiddleware:   prom,
		userRepo:         userRepo,
		skillRepo:        skillRepo,
		swapRepo:         swapRepo,
		authService:      service.NewAuthService(userRepo),
		skillService:     service.NewSkillService(skillRepo),
		discoveryService: service.NewDiscoveryService(userRepo),
		swapService:      service.NewSwapService(swapRepo, userRepo),
	}
}

// connectRedis returns a client for the given URL or address, or nil when
// Redis is not configured or unreachable. The app degrades to in-process
// sessions without it.
func connectRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	opts := &redis.Options{Addr: addr}
	if parsed, err := redis.ParseURL(addr); err == nil {
		opts = parsed
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unreachable, using in-process sessions",
			slog.String("error", err.Error()))
		return nil
	}
	middleware.Logger.Info("Redis connected successfully")
	return client
}

// NewApp creates the Fiber app with the embedded template engine.
func (s *Server) NewApp() *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	return fiber.New(fiber.Config{
		AppName:     "SkillSwap",
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	app.Use(middleware.StructuredLogger())

	// Populate the session user for every route; pages that require login
	// additionally pass through RequireAuth.
	app.Use(s.SessionLoader())
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/healthz", s.Healthz)

	app.Get("/", s.Home)

	app.Get("/register", s.ShowRegister)
	app.Post("/register", middleware.RateLimit(s.redis, 5, 10*time.Minute, "register"), s.Register)
	app.Get("/login", s.ShowLogin)
	app.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)

	app.Get("/public_profiles", s.PublicProfiles)

	authed := app.Group("", s.RequireAuth())
	authed.Get("/logout", s.Logout)
	authed.Get("/dashboard", s.Dashboard)
	authed.Get("/add_skill", s.ShowAddSkill)
	authed.Post("/add_skill", s.AddSkill)
	authed.Get("/delete_skill/:id", s.DeleteSkill)
	authed.Get("/profile/:user_id", s.ViewProfile)
	authed.Get("/request_swap/:user_id", s.ShowRequestSwap)
	authed.Post("/request_swap/:user_id", s.CreateSwap)
	authed.Get("/swap_requests", s.SwapRequests)
	authed.Post("/swap_requests/:id/accept", s.AcceptSwap)
	authed.Post("/swap_requests/:id/reject", s.RejectSwap)
}

// SessionLoader verifies the session cookie when present and stores the user
// ID in locals. It never redirects; anonymous requests pass through.
func (s *Server) SessionLoader() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(sessionCookie)
		if token == "" {
			return c.Next()
		}

		userID, err := s.sessions.Verify(c.Context(), token)
		if err != nil {
			// Stale or forged cookie; drop it and continue anonymously.
			middleware.AuthFailures.WithLabelValues("invalid_session").Inc()
			clearSessionCookie(c)
			return c.Next()
		}

		c.Locals("userID", userID)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page with a flash
// message. Must run after SessionLoader.
func (s *Server) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := currentUserID(c); !ok {
			setFlash(c, flashDanger, "Please log in to continue")
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// Healthz reports process and database health.
func (s *Server) Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": dbStatus,
		"time":   time.Now(),
	})
}

// Shutdown releases the database and Redis connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.Warn("Redis close failed", slog.String("error", err.Error()))
		}
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
