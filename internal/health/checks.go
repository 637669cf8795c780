package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const Version = "1.0.0"

// Endpoints holds the optional dependencies probed by the health handler.
// Stripe is nil when the dummy gateway is configured.
type Endpoints struct {
	Stripe stripe.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}

	if endpoints != nil && endpoints.Stripe != nil {
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: false,
			Check:     stripeCheck(endpoints.Stripe),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func stripeCheck(client stripe.Client) health.CheckFunc {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to stripe: %w", err)
		}

		return nil
	}
}
