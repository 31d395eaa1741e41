package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yanqian/dynamic-pricing/internal/domain/auth"
	"github.com/yanqian/dynamic-pricing/internal/domain/pricing"
	"github.com/yanqian/dynamic-pricing/internal/infra/config"
	"github.com/yanqian/dynamic-pricing/pkg/util"
)

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Recommend a price for one product",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "base-price", Aliases: []string{"b"}, Usage: "Current price of the product", Required: true},
			&cli.Float64Flag{Name: "demand", Aliases: []string{"d"}, Usage: "Demand score, nominally 0 to 1", Required: true},
			&cli.Float64Flag{Name: "competitor-price", Usage: "Reference competitor price, omitted when unknown"},
			&cli.IntFlag{Name: "inventory", Value: pricing.DefaultInventoryLevel, Usage: "Units on hand"},
			&cli.IntFlag{Name: "max-inventory", Value: pricing.DefaultMaxInventory, Usage: "Stock capacity"},
			&cli.StringFlag{Name: "segment", Aliases: []string{"s"}, Value: pricing.SegmentStandard.String(), Usage: "Customer segment (premium, standard, budget)"},
			&cli.Float64Flag{Name: "time-factor", Aliases: []string{"t"}, Value: pricing.DefaultTimeFactor, Usage: "Time-of-day multiplier, 1.0 is neutral"},
			&cli.Float64Flag{Name: "margin-target", Value: pricing.DefaultMarginTarget, Usage: "Reserved margin target"},
			outputFlag(),
		},
		Action: func(c *cli.Context) error {
			segment, err := pricing.ParseSegment(c.String("segment"))
			if err != nil {
				return err
			}
			opts := []pricing.RequestOption{
				pricing.WithInventory(c.Int("inventory"), c.Int("max-inventory")),
				pricing.WithSegment(segment),
				pricing.WithTimeFactor(c.Float64("time-factor")),
				pricing.WithMarginTarget(c.Float64("margin-target")),
			}
			if c.IsSet("competitor-price") {
				opts = append(opts, pricing.WithCompetitorPrice(c.Float64("competitor-price")))
			}
			req := pricing.NewRequest(c.Float64("base-price"), c.Float64("demand"), opts...)
			return runQuote(c, req)
		},
	}
}

func exampleCommand() *cli.Command {
	return &cli.Command{
		Name:  "example",
		Usage: "Run the reference scenario",
		Flags: []cli.Flag{outputFlag()},
		Action: func(c *cli.Context) error {
			return runQuote(c, exampleRequest())
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint a bearer token for the pricing API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Usage: "Token subject", Required: true},
			&cli.DurationFlag{Name: "ttl", Usage: "Token lifetime, defaults to the configured TTL"},
			&cli.StringFlag{Name: "secret", Usage: "Signing secret", EnvVars: []string{"AUTH_SECRET"}},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Read()
			if err != nil {
				return err
			}
			authCfg := auth.Config{Secret: cfg.Auth.Secret, Issuer: cfg.Auth.Issuer, TokenTTL: cfg.Auth.TokenTTL}
			if c.IsSet("secret") {
				authCfg.Secret = c.String("secret")
			}
			if c.IsSet("ttl") {
				authCfg.TokenTTL = c.Duration("ttl")
			}
			svc, err := auth.NewService(authCfg, cliLogger(c))
			if err != nil {
				return err
			}
			issued, err := svc.IssueToken(c.Context, c.String("subject"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, issued.Token)
			fmt.Fprintf(c.App.ErrWriter, "expires at %s\n", issued.ExpiresAt.Format(time.RFC3339))
			return nil
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "text",
		Usage:   "Output format (text, json)",
	}
}

// exampleRequest is a premium product under high demand with a pricier
// competitor during a busy period.
func exampleRequest() pricing.Request {
	return pricing.NewRequest(100, 0.8,
		pricing.WithCompetitorPrice(110),
		pricing.WithInventory(50, 1000),
		pricing.WithSegment(pricing.SegmentPremium),
		pricing.WithTimeFactor(1.2),
	)
}

func runQuote(c *cli.Context, req pricing.Request) error {
	svc, err := newPricingService(c)
	if err != nil {
		return err
	}
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := svc.Recommend(ctx, req)

	switch strings.ToLower(c.String("output")) {
	case "json":
		env := pricing.SuccessEnvelope(res, util.NowUTC())
		if err != nil {
			env = pricing.FailureEnvelope(err, util.NowUTC())
		}
		if encErr := writeJSON(c.App.Writer, env); encErr != nil {
			return encErr
		}
		return err
	case "text":
		if err != nil {
			return err
		}
		writeText(c.App.Writer, req, res)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.String("output"))
	}
}

func newPricingService(c *cli.Context) (pricing.Service, error) {
	pricingCfg, err := config.LoadPricing()
	if err != nil {
		return nil, err
	}
	engine, err := pricing.NewEngine(pricing.EngineConfig{
		MinPriceMultiplier:     pricingCfg.MinPriceMultiplier,
		MaxPriceMultiplier:     pricingCfg.MaxPriceMultiplier,
		DemandSensitivity:      pricingCfg.DemandSensitivity,
		CompetitionSensitivity: pricingCfg.CompetitionSensitivity,
		InventorySensitivity:   pricingCfg.InventorySensitivity,
	})
	if err != nil {
		return nil, err
	}
	return pricing.NewService(engine, pricing.NewValidator(), pricing.NopRecorder{}, cliLogger(c)), nil
}

func cliLogger(c *cli.Context) *slog.Logger {
	if l, ok := c.App.Metadata["logger"].(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(w io.Writer, req pricing.Request, res pricing.Result) {
	fmt.Fprintf(w, "base price:        %.2f\n", req.BasePrice)
	fmt.Fprintf(w, "recommended price: %.2f\n", res.RecommendedPrice)
	fmt.Fprintf(w, "change:            %+.2f%%\n", res.PriceChangePercentage)
	fmt.Fprintf(w, "strategy:          %s\n", res.StrategyUsed)
	fmt.Fprintf(w, "confidence:        %.2f\n", res.ConfidenceScore)
	fmt.Fprintln(w, "reasoning:")
	for _, reason := range res.Reasons {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
}
