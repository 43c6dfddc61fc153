// Command migrate applies the declarative schema in migrations/ to the
// configured database using the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"homeclean-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

type migrateConfig struct {
	DB       config.DBConfig
	DevURL   string `envconfig:"ATLAS_DEV_URL" default:"docker://postgres/17/dev?search_path=public"`
	AtlasBin string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func main() {
	schema := flag.String("schema", "migrations/001_initial_schema.sql", "schema file to apply")
	dryRun := flag.Bool("dry-run", false, "print the planned changes without applying them")
	flag.Parse()

	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	path, err := filepath.Abs(*schema)
	if err != nil {
		slog.Error("invalid schema path", "schema", *schema, "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", cfg.AtlasBin)
	if err != nil {
		slog.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          "file://" + path,
		DevURL:      cfg.DevURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		slog.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	slog.Info("schema applied",
		"dry_run", *dryRun,
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending))
}
