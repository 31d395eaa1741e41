//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yanqian/dynamic-pricing/internal/bootstrap"
	"github.com/yanqian/dynamic-pricing/internal/domain/pricing"
	"github.com/yanqian/dynamic-pricing/internal/infra/config"
	httpiface "github.com/yanqian/dynamic-pricing/internal/interface/http"
	"github.com/yanqian/dynamic-pricing/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		provideLogger,
		provideEngineConfig,
		provideAuthConfig,
		provideTokenValidator,
		provideRegistry,
		pricing.NewEngine,
		pricing.NewValidator,
		pricing.NewService,
		metrics.NewPricingCollector,
		metrics.NewHTTPCollector,
		wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		wire.Bind(new(pricing.Recorder), new(*metrics.PricingCollector)),
		wire.Bind(new(httpiface.LatencyObserver), new(*metrics.HTTPCollector)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
