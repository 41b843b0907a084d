package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-todo-service/docs"
	"github.com/sbilibin2017/gw-todo-service/internal/facades"
	"github.com/sbilibin2017/gw-todo-service/internal/handlers"
	"github.com/sbilibin2017/gw-todo-service/internal/jwt"
	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-service/internal/repositories"
	"github.com/sbilibin2017/gw-todo-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Persistence variants selected by APP_VARIANT.
const (
	variantDatabase = "database"
	variantStorage  = "storage"
)

// config holds every setting read from the environment.
type config struct {
	AppHost          string
	AppPort          string
	LogLevel         string
	LogFormat        string
	Variant          string
	CompletionRoutes bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisTodosKey     string

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
}

// @title gw-todo-service API
// @version 1.0.0
// @description To-do list management service with optional user accounts
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, persistence, messaging, logging, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	cfg.Variant = getEnv("APP_VARIANT", variantDatabase)
	if cfg.Variant != variantDatabase && cfg.Variant != variantStorage {
		err = fmt.Errorf("unknown APP_VARIANT %q", cfg.Variant)
		return
	}
	if cfg.CompletionRoutes, err = strconv.ParseBool(getEnv("APP_COMPLETION_ROUTES", "true")); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	cfg.RedisTodosKey = getEnv("REDIS_TODOS_KEY", "todos")

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "todo-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// todoStore is the persistence collaborator behind the todo service.
type todoStore interface {
	services.TodoReader
	services.TodoWriter
	handlers.Pinger
}

// run initializes the logger, the selected persistence backend, the
// optional event publisher and the HTTP server. It sets up routes, applies
// middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Event publisher
	var publisher services.TodoEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		facade := facades.NewTodoEventKafkaFacade(facades.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		defer facade.Close()
		publisher = facade
		logger.Log.Infow("publishing todo events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, todo events are disabled")
	}

	var r chi.Router
	switch cfg.Variant {
	case variantDatabase:
		db, err := connectPostgres(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		r = newDatabaseRouter(db, publisher, cfg)
	case variantStorage:
		rdb, err := connectRedis(ctx, cfg)
		if err != nil {
			return err
		}
		defer rdb.Close()
		r = newStorageRouter(repositories.NewTodoKVRepository(rdb, cfg.RedisTodosKey), publisher, cfg)
	default:
		return fmt.Errorf("unknown variant %q", cfg.Variant)
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s (variant %s)", cfg.AppHost, cfg.AppPort, cfg.Variant)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// connectPostgres opens the pool, checks it and creates the tables.
func connectPostgres(ctx context.Context, cfg config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	if err := repositories.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema setup failed: %w", err)
	}
	return db, nil
}

// connectRedis creates the client and checks the connection.
func connectRedis(ctx context.Context, cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}
	return rdb, nil
}

// newDatabaseRouter wires the PostgreSQL variant: accounts, auth gate and
// per-request transactions around the todo routes.
func newDatabaseRouter(db *sqlx.DB, publisher services.TodoEventPublisher, cfg config) chi.Router {
	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	todoReadRepo := repositories.NewTodoReadRepository(db, middlewares.GetTxFromContext)
	todoWriteRepo := repositories.NewTodoWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	todoService := services.NewTodoService(todoReadRepo, todoWriteRepo, publisher)

	r := newBaseRouter(db)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Use(middlewares.TxMiddleware(db))
		mountTodoRoutes(r, todoService, false)
	})

	return r
}

// newStorageRouter wires the key-value variant. It has no accounts and
// no auth gate.
func newStorageRouter(store todoStore, publisher services.TodoEventPublisher, cfg config) chi.Router {
	todoService := services.NewTodoService(store, store, publisher)

	r := newBaseRouter(store)
	mountTodoRoutes(r, todoService, cfg.CompletionRoutes)
	return r
}

func newBaseRouter(pinger handlers.Pinger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/health", handlers.NewHealthHandler(pinger))
	return r
}

func mountTodoRoutes(r chi.Router, svc *services.TodoService, completion bool) {
	r.Post("/todo", handlers.NewCreateTodoHandler(svc))
	r.Get("/todos", handlers.NewListTodosHandler(svc))
	r.Get("/todo/{id}", handlers.NewGetTodoHandler(svc))
	r.Put("/todo/{id}", handlers.NewUpdateTodoHandler(svc))
	r.Delete("/todo/{id}", handlers.NewDeleteTodoHandler(svc))

	if completion {
		r.Put("/todo/{id}/complete", handlers.NewCompleteTodoHandler(svc))
		r.Get("/todos/completed", handlers.NewListCompletedTodosHandler(svc))
	}
}
