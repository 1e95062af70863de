package api

import (
	"database/sql"
	"log"

	intconfig "booking-service/internal/config"
	h "booking-service/internal/http/handlers"
	"booking-service/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps are the handles built once at startup.
type Deps struct {
	Bookings h.BookingAPI
	Verifier middleware.TokenVerifier
	DB       *sql.DB
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	h.RegisterValidation()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	errs := h.ErrorResponder{ShowDetails: env.IsDevelopment()}
	r.NoRoute(h.NotFound)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck(deps.DB))

		bh := h.NewBookingHandler(deps.Bookings, errs)
		bookings := api.Group("/bookings", middleware.Auth(deps.Verifier, errs.Respond))
		bookings.POST("", bh.Create)
		bookings.GET("/id/:id/:clientId", bh.Get)
		bookings.PUT("/id/:id/:clientId/status", bh.UpdateStatus)
		bookings.GET("/provider/:providerUserSub", bh.ListByProvider)
		bookings.GET("/client/:clientId", bh.ListByClient)
	}

	return r
}
