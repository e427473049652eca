package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"vittasaathi/internal/config"
	"vittasaathi/internal/domain/entities"
	"vittasaathi/internal/domain/interfaces/repository"
	Iservices "vittasaathi/internal/domain/interfaces/services"
	"vittasaathi/internal/infra/handlers"
	"vittasaathi/internal/infra/logger"
	"vittasaathi/internal/infra/metrics"
	"vittasaathi/internal/infra/nlp"
	"vittasaathi/internal/infra/onboarding"
	"vittasaathi/internal/infra/provider"
	infrarepo "vittasaathi/internal/infra/repository"
	"vittasaathi/internal/infra/routes"
	"vittasaathi/internal/infra/services"
	"vittasaathi/internal/infra/store"
	"vittasaathi/internal/middleware"
	client "vittasaathi/internal/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadEnv()

	ctx := context.Background()
	log := logger.NewLogger(ctx, true)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Session store: redis when REDIS_ADDR is set, mongo otherwise.
	var userContextRepo repository.Repository[entities.UserContext]
	if redisAddr := config.GetEnvOr("REDIS_ADDR", ""); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: config.GetEnvOr("REDIS_PASSWORD", ""),
			DB:       config.GetEnvInt("REDIS_DB", 0),
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal(fmt.Sprintf("error to connect to Redis: %v", err))
		}
		ttl := config.GetEnvDuration("SESSION_TTL", 0)
		userContextRepo = infrarepo.NewRedisRepository[entities.UserContext](redisClient, ttl)
		log.Info(fmt.Sprintf("Using redis session store at %s", redisAddr))
	} else {
		mongoClient := client.MongoClient()
		userContextDB := mongoClient.Database("UserContext")
		userContextRepo = infrarepo.NewMongoRepository[entities.UserContext](userContextDB)
		log.Info("Using mongo session store")
	}

	tz := config.GetEnvOr("TIMEZONE", "Asia/Kolkata")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatal(fmt.Sprintf("invalid TIMEZONE %q: %v", tz, err))
	}

	ledger, err := store.NewSQLite(config.GetEnvOr("LEDGER_DB_PATH", "data/ledger.db"), loc)
	if err != nil {
		log.Fatal(fmt.Sprintf("error to open transaction ledger: %v", err))
	}
	defer ledger.Close()

	httpClient := &http.Client{Timeout: config.GetEnvDuration("HTTP_TIMEOUT", 10*time.Second)}

	var userContextSvc Iservices.IUserContextService = services.NewUserContextService(userContextRepo, ctx, log)

	var fallback nlp.FallbackAdapter
	if config.GetEnvOr("QUERY_AI_API_HOST", "") != "" {
		var queryAISvc Iservices.IQueryAIService = services.NewQueryAIService(log, httpClient, m)
		fallback = queryAISvc
	} else {
		log.Warn("QUERY_AI_API_HOST not set, AI fallback disabled")
	}

	classifier := nlp.NewClassifier(fallback)
	machine := onboarding.NewMachine(config.GetEnvInt("MINIMUM_DAILY_BUDGET", 200))

	dialogSvc := services.NewDialogService(ctx, log, userContextSvc, ledger, classifier, machine, m)

	var whatsAppProvider provider.IWhatsAppProvider
	if config.GetEnvOr("WHATSAPP_PROVIDER", "meta") == "infobip" {
		whatsAppProvider = provider.NewInfobipWhatsAppProvider(log, httpClient, m)
	} else {
		whatsAppProvider = provider.NewMetaWhatsAppProvider(log, httpClient, m)
	}

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	verifyToken := config.GetEnv("VERIFY_TOKEN")
	httpHandlers := handlers.NewHttpHandlers(log, verifyToken, dialogSvc, whatsAppProvider, m)
	infobipHandlers := handlers.NewInfobipHandlers(log, dialogSvc, whatsAppProvider, m)

	appRoutes := routes.NewRoutes(router, httpHandlers, infobipHandlers, registry)
	appRoutes.Init()

	port := config.GetEnvOr("PORT", "8080")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
