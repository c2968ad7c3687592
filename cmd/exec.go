package cmd

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"fusion-site/config"
	"fusion-site/internal/handlers"
	"fusion-site/internal/notify"
	"fusion-site/internal/services"
	"fusion-site/internal/site"
	"fusion-site/internal/storage"
	"fusion-site/monitoring"
	"fusion-site/utils"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func Start() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: cfg.DataDir,
		DefaultDev:     cfg.IsDevelopment(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := monitoring.NewMonitor()

	// Optional contact notifiers
	var notifiers []notify.ContactNotifier

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = utils.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			slog.Warn("redis unavailable, contact notifications via redis disabled", "error", err)
		} else {
			notifiers = append(notifiers, notify.NewRedisNotifier(redisClient, cfg.ContactChannel))
		}
	}

	if cfg.PubNubEnabled() {
		pn := notify.NewPubNubClient(cfg.PubNubPublishKey, cfg.PubNubSubscribeKey, cfg.PubNubSecretKey)
		notifiers = append(notifiers, notify.NewPubNubNotifier(pn, cfg.ContactChannel))
	}

	dispatcher := notify.NewDispatcher(cfg.NotifyTimeout, monitor, notifiers...)
	slog.Info("contact notifiers configured", "count", dispatcher.Len())

	// Initialize storage and services
	eventStore := storage.NewMemoryEventStore(storage.SeedEvents())
	contactStore := storage.NewMemoryContactStore()

	eventService := services.NewEventService(eventStore)
	contactService := services.NewContactService(contactStore, dispatcher, monitor)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	imageHandler := handlers.NewImageHandler(cfg.AssetsDir, monitor)
	contactHandler := handlers.NewContactHandler(contactService)
	pageHandler := handlers.NewPageHandler(eventService, cfg.CarouselInterval)

	app.RootCmd.AddCommand(newEventsCommand(eventService))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.BindFunc(monitor.Middleware())

		// Event endpoints
		se.Router.GET("/api/events", eventHandler.ListEvents)
		se.Router.GET("/api/events/{id}", eventHandler.GetEvent)
		se.Router.GET("/api/tags", eventHandler.ListTags)

		// Image endpoints
		se.Router.GET("/api/images/{type}", imageHandler.GetImage)

		// Contact endpoints
		se.Router.POST("/api/contact", contactHandler.SubmitContact)

		// Page
		se.Router.GET("/{$}", pageHandler.Index)
		se.Router.POST("/theme", pageHandler.ToggleTheme)
		se.Router.GET("/static/{path...}", apis.Static(site.Static(), false))

		if cfg.EnableMetrics {
			se.Router.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))
		}

		// Health check
		se.Router.GET("/health", healthHandler(redisClient))

		log.Println("Server routes registered")

		return se.Next()
	})

	app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
		handleShutdown(cancel, dispatcher, redisClient)
		return e.Next()
	})

	// Start server
	return app.Start()
}

// healthHandler reports healthy unless a configured Redis stops answering.
func healthHandler(redisClient *redis.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if redisClient != nil {
			if err := utils.RedisHealthCheck(e.Request.Context(), redisClient); err != nil {
				return e.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
		}
		return e.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// handleShutdown lets in-flight notifications finish before closing Redis.
func handleShutdown(cancel context.CancelFunc, dispatcher *notify.Dispatcher, redisClient *redis.Client) {
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
	dispatcher.Wait()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slog.Error("close redis", "error", err)
		}
	}
}
