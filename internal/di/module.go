package di

import (
	"github.com/sweetcrumb/bakeshop/internal/app"
	"github.com/sweetcrumb/bakeshop/internal/config"
	"github.com/sweetcrumb/bakeshop/internal/logger"
	"github.com/sweetcrumb/bakeshop/internal/pkg/auth"
	"github.com/sweetcrumb/bakeshop/internal/server/http/handlers"
	"github.com/sweetcrumb/bakeshop/internal/server/http/router"
	"github.com/sweetcrumb/bakeshop/internal/storage/postgres"
	"github.com/sweetcrumb/bakeshop/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.ShopFacade) handlers.ShopFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
