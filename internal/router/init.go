package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/config"
	"github.com/oksasatya/food-cooking-server/internal/application"
	"github.com/oksasatya/food-cooking-server/internal/container"
	"github.com/oksasatya/food-cooking-server/internal/domain/repository"
	"github.com/oksasatya/food-cooking-server/internal/infrastructure/mongodb"
	handlers "github.com/oksasatya/food-cooking-server/internal/interface/http"
	"github.com/oksasatya/food-cooking-server/internal/interface/middleware"
	"github.com/oksasatya/food-cooking-server/internal/router/modules"
	"github.com/oksasatya/food-cooking-server/pkg/helpers"
)

// Deps is everything the modules need. Production builds it from the
// container; tests fill it with in-memory repositories.
type Deps struct {
	Config  *config.Config
	Logger  *logrus.Logger
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
	Carts   repository.CartRepository
	Catalog repository.CatalogRepository
	Redis   *redis.Client
	Ping    handlers.PingFunc
}

// DepsFromContainer wires the Mongo repositories over the shared client.
func DepsFromContainer() Deps {
	colls := container.GetCollections()
	client := container.GetMongo()
	return Deps{
		Config:  container.GetConfig(),
		Logger:  container.GetLogger(),
		JWT:     container.GetJWT(),
		Users:   mongodb.NewUserRepository(colls.Users),
		Carts:   mongodb.NewCartRepository(colls.Carts),
		Catalog: mongodb.NewCatalogRepository(colls.Menu, colls.Reviews),
		Redis:   container.GetRedis(),
		Ping: func(ctx context.Context) error {
			return mongodb.Ping(ctx, client)
		},
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, d Deps) {
	cfg := d.Config

	userSvc := application.NewUserService(d.Users, d.Logger)
	cartSvc := application.NewCartService(d.Carts)
	catalogSvc := application.NewCatalogService(d.Catalog)

	guard := middleware.NewGuard(d.JWT, userSvc, d.Logger)

	var allow middleware.AllowFunc
	if cfg.RateLimitAllowPrivate {
		allow = middleware.AllowPrivateIP()
	}
	writeLimit := middleware.RateLimit(d.Redis, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIPAndPath(), allow)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(d.Ping, d.Logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(d.JWT, d.Logger), writeLimit))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, d.Logger), guard, writeLimit))
	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(catalogSvc, d.Logger)))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc, d.Logger), guard, writeLimit))

	if cfg.DebugMetricsEnabled {
		debugLimit := middleware.RateLimit(d.Redis, 120, time.Minute, middleware.KeyByIP(), nil)
		r.Add(modules.NewDebugModule(debugLimit))
	}
}

// NewEngine builds the gin engine with global middleware and all modules.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()
	proxies := d.Config.TrustedProxyList()
	if err := r.SetTrustedProxies(proxies); err != nil {
		helpers.LogWarn(d.Logger, "invalid TRUSTED_PROXIES, forwarding headers ignored", logrus.Fields{"error": err.Error()})
		proxies = nil
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP(proxies))
	r.Use(middleware.Metrics())
	r.Use(corsMiddleware(d.Config.CORSOrigins()))
	if d.Config.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r, "")
	InitModules(reg, d)
	reg.RegisterAll()
	return r
}
