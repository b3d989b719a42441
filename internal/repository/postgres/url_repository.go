package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const urlColumns = `id, list_id, url, title, description, favicon_url, position, created_at, updated_at`

type URLRepository struct {
	db *pgxpool.Pool
}

func NewURLRepository(db *pgxpool.Pool) *URLRepository {
	return &URLRepository{db: db}
}

func scanURL(row pgx.Row) (*domain.URL, error) {
	var u domain.URL

	err := row.Scan(
		&u.ID,
		&u.ListID,
		&u.URL,
		&u.Title,
		&u.Description,
		&u.FaviconURL,
		&u.Position,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Create inserts a URL into its list. When in.Position is nil the URL is
// appended after the list's current maximum position (0 for an empty list).
// The parent row is locked for the duration so concurrent appends to the same
// list cannot compute the same position.
func (r *URLRepository) Create(ctx context.Context, in *domain.NewURL) (*domain.URL, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var listID string
	err = tx.QueryRow(ctx, `SELECT id FROM url_lists WHERE id = $1 FOR UPDATE`, in.ListID).Scan(&listID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to lock list: %w", err)
	}

	var position int
	if in.Position != nil {
		position = *in.Position
	} else {
		err = tx.QueryRow(ctx,
			`SELECT COALESCE(MAX(position), -1) + 1 FROM urls WHERE list_id = $1`,
			in.ListID,
		).Scan(&position)
		if err != nil {
			return nil, fmt.Errorf("failed to compute next position: %w", err)
		}
	}

	query := `
		INSERT INTO urls (list_id, url, title, description, favicon_url, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + urlColumns

	u, err := scanURL(tx.QueryRow(ctx, query,
		in.ListID,
		in.URL,
		in.Title,
		in.Description,
		in.FaviconURL,
		position,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert url: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit url insert: %w", err)
	}

	return u, nil
}

// GetByListID returns the list's URLs ordered by position, then creation time.
func (r *URLRepository) ListExists(ctx context.Context, listID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM url_lists WHERE id = $1)`, listID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check list: %w", err)
	}
	return exists, nil
}

func (r *URLRepository) GetByListID(ctx context.Context, listID string) ([]domain.URL, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	query := `SELECT ` + urlColumns + ` FROM urls WHERE list_id = $1 ORDER BY position ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query urls: %w", err)
	}
	defer rows.Close()

	urls := []domain.URL{}
	for rows.Next() {
		u, err := scanURL(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan url: %w", err)
		}
		urls = append(urls, *u)
	}

	return urls, rows.Err()
}

func (r *URLRepository) GetByID(ctx context.Context, id string) (*domain.URL, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	u, err := scanURL(r.db.QueryRow(ctx, `SELECT `+urlColumns+` FROM urls WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrURLNotFound
		}
		return nil, fmt.Errorf("failed to get url: %w", err)
	}

	return u, nil
}

// Update applies the non-nil fields of patch. An empty patch returns the
// current row unchanged.
func (r *URLRepository) Update(ctx context.Context, id string, patch domain.URLPatch) (*domain.URL, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := newSetClause()
	if patch.URL != nil {
		set.add("url", *patch.URL)
	}
	if patch.Title != nil {
		set.add("title", *patch.Title)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.FaviconURL != nil {
		set.add("favicon_url", *patch.FaviconURL)
	}
	if patch.Position != nil {
		set.add("position", *patch.Position)
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	query := fmt.Sprintf(`UPDATE urls SET %s WHERE id = $%d RETURNING %s`,
		set.String(), set.next(), urlColumns)

	u, err := scanURL(r.db.QueryRow(ctx, query, append(set.args, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrURLNotFound
		}
		return nil, fmt.Errorf("failed to update url: %w", err)
	}

	return u, nil
}

func (r *URLRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM urls WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete url: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdatePositions assigns every position in one transaction. If any update
// fails, or names a URL that is not in listID, nothing is applied.
func (r *URLRepository) UpdatePositions(ctx context.Context, listID string, updates []domain.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(
			`UPDATE urls SET position = $1 WHERE id = $2 AND list_id = $3`,
			u.Position, u.ID, listID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for _, u := range updates {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return fmt.Errorf("failed to update position of url %s: %w", u.ID, err)
		}
		if tag.RowsAffected() == 0 {
			br.Close()
			return fmt.Errorf("url %s: %w", u.ID, domain.ErrURLNotFound)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to update positions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit positions: %w", err)
	}

	return nil
}
