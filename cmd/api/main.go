package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"expander-core-shopify-layer/internal/application"
	"expander-core-shopify-layer/internal/application/webhook_handlers"
	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/infrastructure/api"
	rediscache "expander-core-shopify-layer/internal/infrastructure/cache"
	appmiddleware "expander-core-shopify-layer/internal/infrastructure/middleware"
	"expander-core-shopify-layer/internal/infrastructure/repository"
	shopifyinfra "expander-core-shopify-layer/internal/infrastructure/shopify"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	// Get configuration from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:8080"
	}

	cacheTTL := 60 * time.Second
	if ttlStr := os.Getenv("CONFIG_CACHE_TTL_SECONDS"); ttlStr != "" {
		if seconds, err := strconv.Atoi(ttlStr); err == nil && seconds > 0 {
			cacheTTL = time.Duration(seconds) * time.Second
		}
	}

	// Connect to MongoDB
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(os.Getenv("MONGODB_DATABASE"))

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer redisClient.Close()

	// Initialize repositories
	shopRepo := repository.NewMongoShopRepository(db)
	localizationRepo := repository.NewMongoLocalizationRepository(db)

	// Initialize infrastructure (implementations)
	configCache := rediscache.NewRedisConfigCache(redisClient, cacheTTL, logger)
	commerceClient := shopifyinfra.NewClient(
		os.Getenv("SHOPIFY_API_KEY"),
		os.Getenv("SHOPIFY_API_SECRET"),
		appURL+"/static/variant-expander.js",
		logger,
	)

	// Initialize application services
	settingsService := application.NewSettingsService(shopRepo, configCache, logger)
	localizationService := application.NewLocalizationService(localizationRepo, configCache, logger)
	configService := application.NewConfigService(shopRepo, localizationRepo, configCache, logger)

	// Initialize webhook dispatcher and register handlers
	webhookDispatcher := application.NewWebhookDispatcher(logger)
	webhookDispatcher.RegisterHandler(webhook_handlers.NewAppUninstalledHandler(logger, shopRepo, configCache))

	// Initialize HTTP handlers
	publicHandler := api.NewPublicHandler(configService, logger)
	settingsHandler := api.NewSettingsHandler(settingsService, commerceClient, logger)
	localizationHandler := api.NewLocalizationHandler(localizationService, logger)
	adminHandler := api.NewAdminHandler(shopRepo, commerceClient, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.MetricsMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation - public
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // The URL pointing to API definition
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	// Storefront configuration endpoint
	r.Get("/public/config", publicHandler.GetConfig)

	// Static localization data (no shop context required)
	r.Get("/api/localization/supported-locales", localizationHandler.GetSupportedLocales)
	r.Get("/api/localization/default-translations/{locale}", localizationHandler.GetDefaultTranslations)

	// Webhook endpoint
	webhookSecret := os.Getenv("SHOPIFY_WEBHOOK_SECRET")
	r.Post("/webhooks/app-uninstalled", webhookHandler(webhookSecret, webhookDispatcher, logger))

	// Shop-scoped routes (shop context resolved by middleware; the auth
	// layer in front of this service has already verified the caller)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.ShopContextMiddleware(shopRepo, logger))

		r.Get("/api/shop", adminHandler.GetShop)
		r.Get("/api/shop/settings", settingsHandler.GetSettings)
		r.Put("/api/shop/settings", settingsHandler.UpdateSettings)
		r.Get("/api/shop/collections", settingsHandler.GetCollections)
		r.Get("/api/shop/products", settingsHandler.GetProducts)
		r.Put("/api/shop/collections/enabled", settingsHandler.UpdateEnabledCollections)

		r.Get("/api/localization/shop/settings", localizationHandler.GetShopSettings)
		r.Put("/api/localization/shop/default-locale", localizationHandler.SetDefaultLocale)
		r.Get("/api/localization/shop/translations/{locale}", localizationHandler.GetTranslations)
		r.Put("/api/localization/shop/translations/{locale}", localizationHandler.SetTranslations)
		r.Post("/api/localization/shop/supported-locales", localizationHandler.AddSupportedLocale)
		r.Delete("/api/localization/shop/supported-locales/{locale}", localizationHandler.RemoveSupportedLocale)

		r.Get("/api/admin/status", adminHandler.GetStatus)
		r.Post("/api/admin/install-script", adminHandler.InstallScript)
		r.Delete("/api/admin/uninstall-script", adminHandler.UninstallScript)
		r.Get("/api/admin/shops", adminHandler.ListShops)
		r.Get("/api/admin/overview", adminHandler.GetOverview)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("Starting API server")
	logger.Info().Msg("Swagger documentation available at http://localhost:" + port + "/swagger/index.html")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}

// webhookHandler verifies and dispatches commerce platform webhooks
func webhookHandler(
	webhookSecret string,
	webhookDispatcher *application.WebhookDispatcher,
	logger zerolog.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if webhookSecret == "" {
			logger.Warn().Msg("Webhook secret not configured")
			http.Error(w, "Webhook secret not configured", http.StatusBadRequest)
			return
		}

		// Get webhook topic from header
		topic := r.Header.Get("X-Shopify-Topic")
		if topic == "" {
			logger.Warn().Msg("Missing X-Shopify-Topic header")
			http.Error(w, "Missing X-Shopify-Topic header", http.StatusBadRequest)
			return
		}

		// Read request body
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to read webhook payload")
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		// Verify webhook signature
		hmacHeader := r.Header.Get("X-Shopify-Hmac-SHA256")
		webhookVerifier := shopifyinfra.NewWebhookVerifier(webhookSecret)
		if err := webhookVerifier.Verify(payload, hmacHeader); err != nil {
			logger.Warn().Err(err).Str("topic", topic).Msg("Webhook signature verification failed")
			http.Error(w, "Invalid signature", http.StatusUnauthorized)
			return
		}

		// Extract shop domain from webhook payload
		var webhookData map[string]interface{}
		shop := ""
		if err := json.Unmarshal(payload, &webhookData); err == nil {
			if shopDomain, ok := webhookData["domain"].(string); ok {
				shop = shopDomain
			} else if shopDomain, ok := webhookData["shop_domain"].(string); ok {
				shop = shopDomain
			}
		}
		// Fallback: try to extract from X-Shopify-Shop-Domain header
		if shop == "" {
			shop = r.Header.Get("X-Shopify-Shop-Domain")
		}

		event := &domain.WebhookEvent{
			Topic:    topic,
			Shop:     shop,
			Payload:  payload,
			Verified: true,
		}

		// Dispatch to handlers
		if err := webhookDispatcher.Dispatch(ctx, event); err != nil {
			logger.Error().
				Err(err).
				Str("topic", topic).
				Str("shop", shop).
				Msg("Failed to dispatch webhook event")

			// Return 500 to trigger a retry
			http.Error(w, "Failed to process webhook event", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"received": "true",
		})
	}
}
