package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/itemshare/item-rental-backend/internal/api"
	"github.com/itemshare/item-rental-backend/internal/booking"
	"github.com/itemshare/item-rental-backend/internal/config"
	"github.com/itemshare/item-rental-backend/internal/item"
	"github.com/itemshare/item-rental-backend/internal/request"
	"github.com/itemshare/item-rental-backend/internal/user"
)

// Container holds the wired application graph.
type Container struct {
	Router *gin.Engine

	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService request.Service
}

type repositories struct {
	users    user.Repository
	items    item.Repository
	bookings booking.Repository
	requests request.Repository
}

// NewContainer wires repositories, services and the router against Postgres.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, logger zerolog.Logger) *Container {
	return build(cfg, logger, repositories{
		users:    user.NewPgxRepository(pool),
		items:    item.NewPgxRepository(pool),
		bookings: booking.NewPgxRepository(pool),
		requests: request.NewPgxRepository(pool),
	})
}

// NewMemoryContainer wires the application against in-memory stores. Used
// when running without a database.
func NewMemoryContainer(cfg *config.Config, logger zerolog.Logger) *Container {
	return build(cfg, logger, repositories{
		users:    user.NewMemoryRepository(),
		items:    item.NewMemoryRepository(),
		bookings: booking.NewMemoryRepository(),
		requests: request.NewMemoryRepository(),
	})
}

func build(cfg *config.Config, logger zerolog.Logger, repos repositories) *Container {
	userService := user.NewService(repos.users)
	itemService := item.NewService(repos.items, userService, repos.bookings)
	bookingService := booking.NewService(
		repos.bookings,
		itemCatalog{items: itemService},
		userDirectory{users: userService},
	)
	requestService := request.NewService(repos.requests, userService, repos.items)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         logger,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
	})

	return &Container{
		Router:         router,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		RequestService: requestService,
	}
}
