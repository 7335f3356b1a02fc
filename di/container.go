package di

import (
	"context"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"hotels-server/api"
	"hotels-server/api/hotelapi"
	"hotels-server/config"
	"hotels-server/dao/redis"
	"hotels-server/db"
	"hotels-server/obs"
	"hotels-server/server"
	"hotels-server/server/handlers"
	services "hotels-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient     db.RedisClient
	RedisHotelDao   *redis.RedisHotelDAO
	HotelAPI        hotelapi.HotelAPI
	Metrics         *obs.Metrics
	ListingService  *services.ListingService
	HotelHandler    *handlers.HotelHandler
	MuxRouter       *mux.Router
	Router          *server.Router
	HotelHttpServer *server.HotelHttpServer
}

// NewContainer initializes and wires up all dependencies. The upstream client
// is constructed once here and passed down explicitly; nothing holds a
// process-global instance.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client; outside prod an in-memory mock stands in so
	// the server runs without a Redis instance.
	var redisClient db.RedisClient
	if env == "prod" {
		redisClient = db.NewCacheRedisClient(ctx, goredis.NewClient(&goredis.Options{
			Addr:     config.GetEnv("REDIS_DB_ADDRESS", config.REDIS_DB_ADDRESS),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		}))
	} else {
		redisClient = db.NewMockRedisClient(ctx)
	}

	// Initialize Redis hotel DAO
	cacheTTL := time.Duration(config.GetEnvInt("HOTELS_CACHE_TTL_MINUTES", config.HOTELS_CACHE_TTL_MINUTES)) * time.Minute
	redisHotelDao := redis.NewRedisHotelDAO(redisClient, cacheTTL)

	// Initialize hotel API client - fixture-backed mock outside prod
	var hotelAPIClient hotelapi.HotelAPI
	if env != "prod" {
		hotelAPIClient = hotelapi.NewHotelApiClientMock(2)
		log.Printf("Using mock hotel api")
	} else {
		log.Printf("Using prod hotel api")
		httpClient := api.NewHTTPClient(
			config.GetEnv("HOTEL_API_ENDPOINT_BASE", config.HOTEL_API_ENDPOINT_BASE),
			time.Duration(config.HOTEL_API_TIMEOUT_SECONDS)*time.Second,
		)
		hotelAPIClient = hotelapi.NewHotelApiClient(httpClient)
	}

	metrics := obs.NewMetrics()

	// Initialize service layer
	listingService := services.NewListingService(
		hotelAPIClient,
		redisHotelDao,
		metrics,
		config.PollInterval(),
		config.GetEnvInt("HOTEL_API_POLL_MAX_ATTEMPTS", config.HOTEL_API_POLL_MAX_ATTEMPTS),
	)

	// Initialize hotel handler
	hotelHandler := handlers.NewHotelHandler(listingService, metrics)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(hotelHandler, muxRouter)

	// initialize hotel http server
	hotelHttpServer := server.NewHotelHttpServer(router, muxRouter, ":"+config.GetEnv("PORT", "8080"))

	return &Container{
		RedisClient:     redisClient,
		RedisHotelDao:   redisHotelDao,
		HotelAPI:        hotelAPIClient,
		Metrics:         metrics,
		ListingService:  listingService,
		HotelHandler:    hotelHandler,
		MuxRouter:       muxRouter,
		Router:          router,
		HotelHttpServer: hotelHttpServer,
	}
}
