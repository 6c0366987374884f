// Command seed loads a catalog fixture (products, categories, hero images)
// into Firestore in a single all-or-nothing batch.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/firestore"
)

func main() {
	fixturePath := flag.String("fixture", "", "Path to the JSON fixture file (defaults to seed.fixturePath from config)")
	flag.Parse()

	if err := run(*fixturePath); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(fixturePath string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	if fixturePath == "" && cfg.Seed != nil {
		fixturePath = cfg.Seed.FixturePath
	}
	if fixturePath == "" {
		return fmt.Errorf("no fixture path given, use -fixture or seed.fixturePath")
	}

	ctx := context.Background()

	client, err := firestore.NewClient(ctx, &cfg.Firebase)
	if err != nil {
		return err
	}
	defer client.Close()

	return firestore.NewSeeder(client, logger).Seed(ctx, fixturePath)
}
