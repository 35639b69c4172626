package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"hotel-pms-backend/internal/account"
	"hotel-pms-backend/internal/api"
	"hotel-pms-backend/internal/auth"
	"hotel-pms-backend/internal/booking"
	"hotel-pms-backend/internal/hotel"
	"hotel-pms-backend/internal/inventory"
	"hotel-pms-backend/internal/pkg/lock"
	"hotel-pms-backend/internal/role"
	"hotel-pms-backend/internal/vendors"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	AllowedOrigins []string
	DBPool         *pgxpool.Pool
	RedisClient    *redis.Client
	BookingLockTTL time.Duration
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container. It fails
// when the role hierarchy in the database does not validate: a broken
// permission graph must stop the server at startup, not at request time.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Booking creation serializes per room. With Redis the lock covers
	// every instance; without it only this process.
	var locker lock.Locker
	if cfg.RedisClient != nil {
		locker = lock.NewRedisLocker(cfg.RedisClient, cfg.BookingLockTTL)
	} else {
		locker = lock.NewMemoryLocker()
	}

	// Vendor module
	vendorRepo := vendors.NewPgxRepository(cfg.DBPool)
	vendorService := vendors.NewService(vendorRepo)

	// Hotel module
	hotelRepo := hotel.NewPgxRepository(cfg.DBPool)
	hotelService := hotel.NewService(hotelRepo, vendorService)

	// Role module, loads and validates the role forest.
	roleRepo := role.NewPgxRepository(cfg.DBPool)
	roleService, err := role.NewService(ctx, roleRepo)
	if err != nil {
		return nil, err
	}

	// Account module
	accountRepo := account.NewPgxRepository(cfg.DBPool)
	accountService := account.NewService(accountRepo, roleService, hotelService, passwordHasher)

	// Inventory module
	inventoryRepo := inventory.NewPgxRepository(cfg.DBPool)
	inventoryService := inventory.NewService(inventoryRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, inventoryService, hotelService, locker)

	router := api.NewRouter(
		vendorService,
		hotelService,
		roleService,
		accountService,
		inventoryService,
		bookingService,
		jwtManager,
		cfg.AllowedOrigins,
	)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
