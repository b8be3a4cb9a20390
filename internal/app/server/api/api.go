package api

import (
	healthAPI "itemkeeper/internal/app/server/api/http/health"
	itemAPI "itemkeeper/internal/app/server/api/http/item"
	"itemkeeper/internal/app/server/api/http/middleware"
	"itemkeeper/internal/app/server/api/http/middleware/auth"
	"itemkeeper/internal/app/server/api/http/middleware/logger"
	userAPI "itemkeeper/internal/app/server/api/http/user"
	"itemkeeper/internal/domain/item"
	"itemkeeper/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Item   *itemAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(items item.Servicer, users user.Servicer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Itemkeeper API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(items, users, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Item.SetupRoutes(API)

	return mux
}

func handlers(items item.Servicer, users user.Servicer, log *slog.Logger) *Handlers {
	authMW := auth.New(users, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(users, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	protected := middlewares.GetAllAndClear()
	itemHandler := itemAPI.NewHandler(items, log, public, protected)

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Item:   itemHandler,
	}
}
