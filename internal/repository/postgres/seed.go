package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeedURL struct {
	URL         string
	Title       string
	Description string
}

type SeedList struct {
	Title       string
	Slug        string
	Description string
	Published   bool
	URLs        []SeedURL
}

// Seed inserts lists and their URLs in one transaction using two batches.
// Lists whose slug already exists are skipped along with their URLs. It
// returns the number of lists inserted.
func Seed(ctx context.Context, db *pgxpool.Pool, lists []SeedList) (int, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	listBatch := &pgx.Batch{}
	for _, l := range lists {
		listBatch.Queue(`
			INSERT INTO url_lists (title, slug, description, is_published)
			VALUES ($1, $2, NULLIF($3, ''), $4)
			ON CONFLICT (slug) DO NOTHING
			RETURNING id`,
			l.Title, l.Slug, l.Description, l.Published,
		)
	}

	ids := make([]string, len(lists))
	br := tx.SendBatch(ctx, listBatch)
	for i, l := range lists {
		err := br.QueryRow().Scan(&ids[i])
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			br.Close()
			return 0, fmt.Errorf("failed to insert list %q: %w", l.Slug, err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to insert lists: %w", err)
	}

	inserted := 0
	urlBatch := &pgx.Batch{}
	for i, l := range lists {
		if ids[i] == "" {
			continue
		}
		inserted++

		for pos, u := range l.URLs {
			urlBatch.Queue(`
				INSERT INTO urls (list_id, url, title, description, position)
				VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)`,
				ids[i], u.URL, u.Title, u.Description, pos,
			)
		}
	}

	if urlBatch.Len() > 0 {
		if err := tx.SendBatch(ctx, urlBatch).Close(); err != nil {
			return 0, fmt.Errorf("failed to insert urls: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	return inserted, nil
}
