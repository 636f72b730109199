// Command seed loads the default catalog, menus and singleton documents.
// Running it again only reports what already exists.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Waleedanwar01/project-insurance-1/internal/app"
	"github.com/Waleedanwar01/project-insurance-1/internal/config"
	"github.com/Waleedanwar01/project-insurance-1/internal/lib/logger/sl"

	"github.com/fatih/color"
)

func main() {
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	application, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Error("failed to init application", sl.Err(err))
		os.Exit(1)
	}
	defer application.Stop()

	report, err := application.Seeder.Seed(ctx)
	if err != nil {
		color.Red("seed failed: %v", err)
		os.Exit(1)
	}

	created := color.New(color.FgGreen).SprintFunc()
	existing := color.New(color.FgYellow).SprintFunc()

	for _, res := range report.Results {
		status := existing("exists ")
		if res.Created {
			status = created("created")
		}
		fmt.Printf("%s  %-14s %s\n", status, res.Kind, res.Key)
	}

	color.Cyan("\n%d created, %d already present, %d pages backfilled",
		report.Created(), report.Existing(), report.Backfilled)
}
