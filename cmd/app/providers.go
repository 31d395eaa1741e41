package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/yanqian/dynamic-pricing/internal/domain/auth"
	"github.com/yanqian/dynamic-pricing/internal/domain/pricing"
	"github.com/yanqian/dynamic-pricing/internal/infra/config"
	httpiface "github.com/yanqian/dynamic-pricing/internal/interface/http"
	"github.com/yanqian/dynamic-pricing/pkg/logger"
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Log.Level, cfg.Log.Format)
}

func provideEngineConfig(cfg *config.Config) pricing.EngineConfig {
	return pricing.EngineConfig{
		MinPriceMultiplier:     cfg.Pricing.MinPriceMultiplier,
		MaxPriceMultiplier:     cfg.Pricing.MaxPriceMultiplier,
		DemandSensitivity:      cfg.Pricing.DemandSensitivity,
		CompetitionSensitivity: cfg.Pricing.CompetitionSensitivity,
		InventorySensitivity:   cfg.Pricing.InventorySensitivity,
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.Secret,
		Issuer:   cfg.Auth.Issuer,
		TokenTTL: cfg.Auth.TokenTTL,
	}
}

// provideTokenValidator returns nil when auth is disabled so the router
// leaves /api/v1 open.
func provideTokenValidator(cfg *config.Config, authCfg auth.Config, logger *slog.Logger) (httpiface.TokenValidator, error) {
	if !cfg.Auth.Enabled {
		logger.Info("api auth disabled")
		return nil, nil
	}
	svc, err := auth.NewService(authCfg, logger)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
