// Command setup checks the environment and item catalog before a first start.
// It loads .env, validates the required variables and builds every catalog
// item, exiting non-zero on the first problem.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/player"
)

func main() {
	itemsPath := flag.String("items", "", "catalog file to check (default: ITEMS_PATH)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Environment check failed: %v", err)
	}
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}

	path := *itemsPath
	if path == "" {
		var ok bool
		if path, ok = os.LookupEnv(config.EnvItemsPath); !ok {
			path = config.ConfigPathItems
		}
	}

	svc, err := catalog.NewService(item.NewLoader(), path, player.NewOfflineDirectory())
	if err != nil {
		log.Fatalf("Catalog %q failed to load: %v", path, err)
	}

	ctx := context.Background()
	for _, name := range svc.Names() {
		stack, err := svc.Build(ctx, name)
		if err != nil {
			log.Fatalf("Item %q failed to build: %v", name, err)
		}
		sum, err := svc.Describe(name)
		if err != nil {
			log.Fatalf("Item %q failed to resolve: %v", name, err)
		}
		fmt.Printf("ok  %-24s %-24s %s x%d\n", name, sum.Title, stack.Type.Title(), stack.Amount)
	}

	fmt.Printf("Catalog check passed: %d items\n", len(svc.Names()))
}
