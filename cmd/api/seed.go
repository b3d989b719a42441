package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/gamassss/urlist/internal/logger"
	"github.com/gamassss/urlist/internal/repository/postgres"
	"github.com/gamassss/urlist/pkg/generator"
	"github.com/spf13/cobra"
)

var demoLists = []postgres.SeedList{
	{
		Title:       "Weekend Reads",
		Description: "Long-form articles worth the time",
		Published:   true,
		URLs: []postgres.SeedURL{
			{URL: "https://go.dev/blog/pipelines", Title: "Go Concurrency Patterns: Pipelines"},
			{URL: "https://martinfowler.com/articles/microservices.html", Title: "Microservices"},
			{URL: "https://www.postgresql.org/docs/current/mvcc.html", Title: "Concurrency Control"},
		},
	},
	{
		Title:       "Go Tooling",
		Description: "Libraries used day to day",
		URLs: []postgres.SeedURL{
			{URL: "https://github.com/gin-gonic/gin", Title: "Gin"},
			{URL: "https://github.com/jackc/pgx", Title: "pgx"},
			{URL: "https://github.com/redis/go-redis", Title: "go-redis"},
			{URL: "https://github.com/spf13/cobra", Title: "Cobra"},
		},
	},
	{
		Title:     "Design References",
		Published: true,
		URLs: []postgres.SeedURL{
			{URL: "https://refactoringui.com", Title: "Refactoring UI"},
			{URL: "https://www.nngroup.com/articles/", Title: "NN/g Articles"},
		},
	},
}

var sampleURLs = []string{
	"https://example.com",
	"https://go.dev",
	"https://pkg.go.dev",
	"https://github.com",
	"https://news.ycombinator.com",
	"https://lobste.rs",
}

func newSeedCmd() *cobra.Command {
	var extra int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo lists",
		Long: `Insert a few demo lists with URLs. --extra adds generated lists on top,
which is handy for exercising pagination and load.

Lists whose slug already exists are left untouched, so seeding twice is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.Get()

			dbPool, err := setupDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer dbPool.Close()

			if err := postgres.Migrate(ctx, dbPool); err != nil {
				return err
			}

			lists := buildSeedLists(extra)
			inserted, err := postgres.Seed(ctx, dbPool, lists)
			if err != nil {
				return err
			}

			log.Info("Seed completed",
				slog.Int("requested", len(lists)),
				slog.Int("inserted", inserted),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&extra, "extra", 0, "number of generated lists to add")

	return cmd
}

func buildSeedLists(extra int) []postgres.SeedList {
	lists := make([]postgres.SeedList, 0, len(demoLists)+extra)
	for _, l := range demoLists {
		l.Slug = generator.Slugify(l.Title)
		lists = append(lists, l)
	}

	for i := 1; i <= extra; i++ {
		title := fmt.Sprintf("Generated List %d", i)

		urls := make([]postgres.SeedURL, 1+rand.Intn(len(sampleURLs)))
		for j := range urls {
			urls[j] = postgres.SeedURL{URL: sampleURLs[rand.Intn(len(sampleURLs))]}
		}

		lists = append(lists, postgres.SeedList{
			Title:     title,
			Slug:      generator.Slugify(title),
			Published: i%2 == 0,
			URLs:      urls,
		})
	}

	return lists
}
