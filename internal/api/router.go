package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/itemshare/item-rental-backend/internal/booking"
	bookingHttp "github.com/itemshare/item-rental-backend/internal/booking/http"
	"github.com/itemshare/item-rental-backend/internal/identity"
	"github.com/itemshare/item-rental-backend/internal/item"
	itemHttp "github.com/itemshare/item-rental-backend/internal/item/http"
	"github.com/itemshare/item-rental-backend/internal/request"
	requestHttp "github.com/itemshare/item-rental-backend/internal/request/http"
	"github.com/itemshare/item-rental-backend/internal/user"
	userHttp "github.com/itemshare/item-rental-backend/internal/user/http"
)

// Config carries everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       zerolog.Logger

	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService request.Service
}

// NewRouter initializes the HTTP router engine. It assembles middleware
// (request logging, recovery, CORS, sharer identity) and registers routes
// for all modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	// The gateway forwards the caller's id in X-Sharer-User-Id.
	r.Use(identity.SharerUserID())

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler)
		bookingHttp.RegisterRoutes(root, bookingHandler)
		requestHttp.RegisterRoutes(root, requestHandler)
	}

	return r
}
