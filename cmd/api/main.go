package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"truvamate/internal/adapter/api"
	"truvamate/internal/adapter/api/handler"
	apimiddleware "truvamate/internal/adapter/api/middleware"
	"truvamate/internal/adapter/api/router"
	"truvamate/internal/adapter/cache"
	"truvamate/internal/adapter/repository"
	"truvamate/internal/infrastructure/events"
	"truvamate/internal/infrastructure/geo"
	"truvamate/internal/infrastructure/notifier"
	"truvamate/internal/infrastructure/photos"
	"truvamate/internal/usecase"
	"truvamate/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if credsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsPath != "" {
		log.Printf("Using service account from file: %s", credsPath)
		opts = append(opts, option.WithCredentialsFile(credsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderTopic, 256)
		kafkaPublisher.Start(ctx)
		publisher = kafkaPublisher
		log.Printf("Publishing order events to %s via %v", cfg.OrderTopic, cfg.KafkaBrokers)
	}

	hub := notifier.NewHub(time.Duration(cfg.ToastTTLMillis) * time.Millisecond)

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	ticketRepo := repository.NewFirestoreTicketRepository(firestoreClient)
	profileRepo := repository.NewFirestorePaymentProfileRepository(firestoreClient)
	checkoutRepo := repository.NewFirestoreCheckoutRepository(firestoreClient)
	contentRepo := repository.NewFirestoreSiteContentRepository(firestoreClient)
	geoRepo := repository.NewFirestoreGeoRepository(firestoreClient)
	photoConnRepo := repository.NewFirestorePhotoConnectionRepository(firestoreClient)

	cartCache := cache.NewRedisCartCache(redisClient)
	photoClient := photos.NewClient(cfg.PhotoLibraryBaseURL)
	geoClient := geo.NewClient(cfg.GeoLookupBaseURL)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.AdminEmail)
	productUseCase := usecase.NewProductUseCase(productRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, cartCache, hub)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo, hub)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, hub, publisher)
	lotteryUseCase := usecase.NewLotteryUseCase(ticketRepo, userRepo, hub, rng)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, hub)
	checkoutUseCase := usecase.NewCheckoutUseCase(checkoutRepo, cartUseCase, lotteryUseCase, profileUseCase, orderUseCase, rng)
	contentUseCase := usecase.NewContentUseCase(contentRepo, hub)
	photoUseCase := usecase.NewTicketPhotoUseCase(photoConnRepo, photoClient, hub)
	geoUseCase := usecase.NewGeoUseCase(geoRepo, geoClient)

	contentUseCase.LoadFromStore(ctx)
	productUseCase.EnsureSeed(ctx)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	handler.Setup(
		authUseCase,
		productUseCase,
		cartUseCase,
		wishlistUseCase,
		orderUseCase,
		checkoutUseCase,
		lotteryUseCase,
		profileUseCase,
		contentUseCase,
		photoUseCase,
		geoUseCase,
		hub,
		authMiddleware,
	)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
