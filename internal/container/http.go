package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/rohithgowthamg4927/clickweb/internal/analytics"
	"github.com/rohithgowthamg4927/clickweb/internal/handlers"
	"github.com/rohithgowthamg4927/clickweb/internal/health"
	"github.com/rohithgowthamg4927/clickweb/internal/messaging"
	"github.com/rohithgowthamg4927/clickweb/internal/middleware"
	"github.com/rohithgowthamg4927/clickweb/internal/store"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the huma API with all routes
// registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		clickStore := do.MustInvoke[store.ClickStore](i)
		publishClickLogged := do.MustInvoke[messaging.Publish[analytics.ClickLoggedEvent]](i)
		logger := do.MustInvoke[*zap.Logger](i)

		api := humachi.New(router, huma.DefaultConfig("Click Tracker", "1.0.0"))
		api.UseMiddleware(middleware.RequestMeta(api))

		handlers.RegisterRoutes(api, handlers.NewClickHandler(clickStore, publishClickLogged, logger))
		health.RegisterRoutes(api, health.NewHandler())

		return api, nil
	})
}
