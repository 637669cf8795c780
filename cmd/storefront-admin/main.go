package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/events"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/alecthomas/kong"
	"golang.org/x/crypto/bcrypt"
)

var cli struct {
	Config string `help:"Path to the config file." env:"CONFIG_PATH" type:"existingfile"`

	RemoveStaleBaskets removeStaleBasketsCmd `cmd:"" help:"Delete baskets with no activity for the given number of days."`
	HashPassword       hashPasswordCmd       `cmd:"" help:"Print a bcrypt hash for the admin password setting."`
}

type removeStaleBasketsCmd struct {
	Days int `arg:"" help:"Delete baskets untouched for this many days."`
}

func (c *removeStaleBasketsCmd) Run(ctx context.Context, basket service.BasketService, out io.Writer) error {
	deleted, err := basket.SweepStale(ctx, c.Days)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Deleted %d basket items\n", deleted)

	return nil
}

type hashPasswordCmd struct {
	Password string `arg:"" help:"Admin password to hash."`
}

func (c *hashPasswordCmd) Run(out io.Writer) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Fprintln(out, string(hash))

	return nil
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("storefront-admin"),
		kong.Description("Storefront maintenance commands."),
		kong.UsageOnError(),
	)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx := context.Background()
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.BindTo(os.Stdout, (*io.Writer)(nil))

	if kctx.Command() == "remove-stale-baskets <days>" {
		basket, closeDB, err := basketService(cli.Config)
		kctx.FatalIfErrorf(err, "failed to connect to the database")
		defer closeDB()

		kctx.BindTo(basket, (*service.BasketService)(nil))
	}

	kctx.FatalIfErrorf(kctx.Run())
}

// basketService builds a service for maintenance only. It has no cache and no
// subscribers because the sweep reads and writes the database alone.
func basketService(configPath string) (service.BasketService, func(), error) {
	if configPath == "" {
		return nil, nil, fmt.Errorf("config path is not set, use --config or CONFIG_PATH")
	}

	cfg, err := config.LoadConfigFromPath(configPath)
	if err != nil {
		return nil, nil, err
	}

	repos, err := repository.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	closeDB := func() {
		if err := repos.Close(); err != nil {
			slog.Warn("Failed to close database", slog.String("error", err.Error()))
		}
	}

	return service.NewBasketService(repos.Basket, repos.Variant, nil, events.NewBus(0)), closeDB, nil
}
