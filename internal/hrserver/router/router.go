// Package router wires the HR server routes and middleware.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/internal/hrserver/biz"
	"github.com/kart-io/hr-center/internal/hrserver/handler"
	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/pkg/infra/middleware"
	authmw "github.com/kart-io/hr-center/pkg/infra/middleware/auth"
	"github.com/kart-io/hr-center/pkg/options/weather"
	"github.com/kart-io/hr-center/pkg/security/auth"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

// Config carries the router dependencies.
type Config struct {
	Store         store.Factory
	Authenticator auth.Authenticator
	Weather       *weather.Options

	// Mode is the gin mode: debug, release or test.
	Mode string

	// CORSAllowOrigins lists allowed browser origins. Empty disables
	// cross-origin access.
	CORSAllowOrigins []string
}

// New builds the gin engine with all middleware and routes installed.
func New(cfg *Config) (*gin.Engine, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	profileSvc := biz.NewProfileService(cfg.Store)
	employeeSvc := biz.NewEmployeeService(cfg.Store)
	departmentSvc := biz.NewDepartmentService(cfg.Store)
	positionSvc := biz.NewPositionService(cfg.Store)
	locationSvc := biz.NewLocationService(cfg.Store)
	weatherSvc := biz.NewWeatherService(cfg.Store, cfg.Weather)
	seedSvc := biz.NewSeedService(cfg.Store)

	employees := handler.NewEmployeeHandler(employeeSvc)
	departments := handler.NewDepartmentHandler(departmentSvc)
	positions := handler.NewPositionHandler(positionSvc)
	locations := handler.NewLocationHandler(locationSvc)
	profiles := handler.NewProfileHandler(profileSvc)
	weatherH := handler.NewWeatherHandler(weatherSvc)
	seed := handler.NewSeedHandler(seedSvc)
	permissions := handler.NewPermissionsHandler()
	health := handler.NewHealthHandler(cfg.Store)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())

	if len(cfg.CORSAllowOrigins) > 0 {
		corsCfg := middleware.DefaultCORSConfig
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
		cors, err := middleware.CORSWithConfig(corsCfg)
		if err != nil {
			return nil, err
		}
		engine.Use(cors)
	}

	engine.GET("/healthz", health.Check)

	guard := authmw.NewGuard(cfg.Authenticator, profileSvc)

	api := engine.Group("/api")
	api.Use(guard.Authenticate())
	{
		api.GET("/permissions", permissions.Get)

		api.GET("/employees", guard.Require(rbac.PermissionRead), employees.List)
		api.GET("/employees/:id",
			guard.RequireOwned(rbac.PermissionRead, "id", employeeSvc.OwnerUID),
			employees.Get)
		api.POST("/employees", guard.Require(rbac.PermissionCreate), employees.Create)
		api.PUT("/employees/:id", guard.Require(rbac.PermissionUpdate), employees.Update)
		api.DELETE("/employees/:id", guard.Require(rbac.PermissionDelete), employees.Delete)

		api.GET("/departments", guard.Require(rbac.PermissionRead), departments.List)
		api.POST("/departments", guard.Require(rbac.PermissionCreate), departments.Create)
		api.PUT("/departments/:id", guard.Require(rbac.PermissionUpdate), departments.Update)
		api.DELETE("/departments/:id", guard.Require(rbac.PermissionDelete), departments.Delete)

		api.GET("/positions", guard.Require(rbac.PermissionRead), positions.List)
		api.DELETE("/positions/:id", guard.Require(rbac.PermissionDelete), departments.DeletePosition)

		api.GET("/locations", guard.Require(rbac.PermissionRead), locations.List)

		api.GET("/user-profiles", guard.Require(rbac.PermissionRead), profiles.List)
		api.GET("/user-profiles/:uid", guard.Require(rbac.PermissionRead), profiles.Get)
		api.POST("/user-profiles", guard.Require(rbac.PermissionCreate), profiles.Create)
		api.PUT("/user-profiles/:uid", guard.Require(rbac.PermissionUpdate), profiles.Update)
		api.POST("/user-profiles/link", guard.Require(rbac.PermissionCreate), profiles.Link)

		api.GET("/weather", guard.Require(rbac.PermissionRead), weatherH.Report)

		api.POST("/init-data", guard.Require(rbac.PermissionCreate), seed.InitData)
	}

	return engine, nil
}
