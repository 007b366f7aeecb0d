// Command seed-db loads the drink catalog from a JSON file and registers an
// API key, so a fresh database can serve orders immediately.
package main

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/brewline/coffee-trade/internal/repository"
)

type menuItemJSON struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

const (
	upsertItemSQL = `INSERT INTO menu_items (id, name, category, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = $2, category = $3, price = $4`

	upsertKeySQL = `INSERT INTO api_keys (id, key_hash, name, active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (key_hash) DO UPDATE SET active = TRUE`
)

func main() {
	var (
		databaseURL  string
		menuFile     string
		apiKey       string
		apiKeyPepper string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&menuFile, "menu-file", "db/seed/menu.json", "path to menu JSON file")
	flag.StringVar(&apiKey, "api-key", "", "API key to seed (or COFFEE_SEED_API_KEY env)")
	flag.StringVar(&apiKeyPepper, "api-key-pepper", "", "HMAC pepper for API key hashing (or COFFEE_API_KEY_PEPPER env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if apiKey == "" {
		apiKey = os.Getenv("COFFEE_SEED_API_KEY")
	}
	if apiKeyPepper == "" {
		apiKeyPepper = os.Getenv("COFFEE_API_KEY_PEPPER")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, menuFile, apiKey, apiKeyPepper); err != nil {
		slog.Error("seed failed", "err", err)
		os.Exit(1)
	}
	slog.Info("seed completed")
}

func run(ctx context.Context, databaseURL, menuFile, apiKey, apiKeyPepper string) error {
	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	items, err := loadMenu(menuFile)
	if err != nil {
		return errors.Wrap(err, "load menu")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, item := range items {
		g.Go(func() error {
			_, err := pool.Exec(gctx, upsertItemSQL, item.ID, item.Name, item.Category, item.Price)
			return errors.Wrapf(err, "upsert item %s", item.ID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("menu seeded", "items", len(items))

	if apiKey != "" {
		mac := hmac.New(sha256.New, []byte(apiKeyPepper))
		mac.Write([]byte(apiKey))
		hash := hex.EncodeToString(mac.Sum(nil))

		if _, err := pool.Exec(ctx, upsertKeySQL, uuid.New().String(), hash, "seeded"); err != nil {
			return errors.Wrap(err, "upsert api key")
		}
		slog.Info("api key seeded")
	}

	return nil
}

func loadMenu(path string) ([]menuItemJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []menuItemJSON
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
