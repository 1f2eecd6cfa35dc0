package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jairjanssen9-web/levant---clock-in/cmd/docs"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/middleware"
	"github.com/jairjanssen9-web/levant---clock-in/internal/platform/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public authentication routes (rate limited)
	registerAuthRoutes(r, cfg, services.Auth)

	// Kiosk routes: the shared terminal has no credentials, so clocking
	// in/out and the status board stay public.
	setupKioskRoutes(r, services)

	// Admin routes behind JWT auth
	setupAdminRoutes(r, cfg, services)

	// Swagger routes (not in production)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators wires domain validations into gin's binding layer.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("employeerole", func(fl validator.FieldLevel) bool {
			return domain.EmployeeRole(fl.Field().String()).Valid()
		})
	}
}

// setupKioskRoutes configures the unauthenticated kiosk surface.
func setupKioskRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	kiosk := r.Group("/api/v1")

	registerSessionRoutes(kiosk, services.TimeLog)
	registerDashboardRoutes(kiosk, services.Reporting)
}

// setupAdminRoutes configures the /api/v1 admin group behind the auth middleware.
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	admin := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerEmployeeRoutes(admin, services.Employee)
	registerTimeLogRoutes(admin, services.TimeLog)
	registerReportRoutes(admin, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
