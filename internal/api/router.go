package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-pms-backend/internal/account"
	accountHttp "hotel-pms-backend/internal/account/http"
	"hotel-pms-backend/internal/auth"
	"hotel-pms-backend/internal/booking"
	bookingHttp "hotel-pms-backend/internal/booking/http"
	"hotel-pms-backend/internal/hotel"
	hotelHttp "hotel-pms-backend/internal/hotel/http"
	"hotel-pms-backend/internal/inventory"
	inventoryHttp "hotel-pms-backend/internal/inventory/http"
	"hotel-pms-backend/internal/pkg/logging"
	"hotel-pms-backend/internal/role"
	roleHttp "hotel-pms-backend/internal/role/http"
	"hotel-pms-backend/internal/vendors"
	vendorHttp "hotel-pms-backend/internal/vendors/http"
)

// NewRouter initializes the HTTP router engine. It assembles the global
// middleware (CORS, logging, recovery), the auth and capability guards, and
// registers routes for every module.
func NewRouter(
	vendorService vendors.Service,
	hotelService hotel.Service,
	roleService role.Service,
	accountService account.Service,
	inventoryService inventory.Service,
	bookingService booking.Service,
	jwtManager *auth.JWTManager,
	allowedOrigins []string,
) *gin.Engine {

	r := gin.New()
	r.Use(logging.GinLogger(), gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// authMiddleware validates the JWT; the capability guards below resolve
	// the caller's role through the hierarchy and check one token each.
	authMiddleware := auth.AuthRequired(jwtManager)
	requireCap := func(cap role.Capability) gin.HandlerFunc {
		return RequireCapability(roleService, cap)
	}

	vendorHandler := vendorHttp.NewHandler(vendorService)
	hotelHandler := hotelHttp.NewHandler(hotelService)
	roleHandler := roleHttp.NewHandler(roleService)
	accountHandler := accountHttp.NewHandler(accountService, jwtManager)
	inventoryHandler := inventoryHttp.NewHandler(inventoryService)
	bookingHandler := bookingHttp.NewHandler(bookingService)

	v1 := r.Group("/v1")
	{
		vendorHttp.RegisterRoutes(v1, vendorHandler, authMiddleware, requireCap(role.CapManageVendors))
		hotelHttp.RegisterRoutes(v1, hotelHandler, authMiddleware, requireCap(role.CapManageHotels))
		roleHttp.RegisterRoutes(v1, roleHandler, authMiddleware, requireCap(role.CapManageRoles))
		accountHttp.RegisterRoutes(v1, accountHandler, authMiddleware, requireCap(role.CapManageStaff))
		inventoryHttp.RegisterRoutes(v1, inventoryHandler, authMiddleware, requireCap(role.CapManageInventory))
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, bookingHttp.TransitionMiddlewares{
			Create:     requireCap(role.CapCreateBooking),
			Confirm:    requireCap(role.CapConfirmBooking),
			CheckIn:    requireCap(role.CapCheckIn),
			CheckOut:   requireCap(role.CapCheckOut),
			Cancel:     requireCap(role.CapCancelBooking),
			MarkNoShow: requireCap(role.CapMarkNoShow),
		})
	}

	return r
}
