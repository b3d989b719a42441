package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listColumns = `id, title, slug, description, is_published, created_at, updated_at`

type ListRepository struct {
	db *pgxpool.Pool
}

func NewListRepository(db *pgxpool.Pool) *ListRepository {
	return &ListRepository{db: db}
}

func scanList(row pgx.Row) (*domain.List, error) {
	var list domain.List

	err := row.Scan(
		&list.ID,
		&list.Title,
		&list.Slug,
		&list.Description,
		&list.IsPublished,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// Create inserts a list. A taken slug yields domain.ErrSlugConflict.
func (r *ListRepository) Create(ctx context.Context, title, slug string, description *string) (*domain.List, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	query := `
		INSERT INTO url_lists (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING ` + listColumns

	list, err := scanList(r.db.QueryRow(ctx, query, title, slug, description))
	if err != nil {
		if isSlugConflict(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to insert list: %w", err)
	}

	return list, nil
}

func (r *ListRepository) GetByID(ctx context.Context, id string) (*domain.List, error) {
	return r.getOne(ctx, `SELECT `+listColumns+` FROM url_lists WHERE id = $1`, id)
}

func (r *ListRepository) GetBySlug(ctx context.Context, slug string) (*domain.List, error) {
	return r.getOne(ctx, `SELECT `+listColumns+` FROM url_lists WHERE slug = $1`, slug)
}

func (r *ListRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.List, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	list, err := scanList(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	return list, nil
}

// GetAll returns every list, newest first.
func (r *ListRepository) GetAll(ctx context.Context) ([]domain.List, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+listColumns+` FROM url_lists ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.List{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, *list)
	}

	return lists, rows.Err()
}

// Update applies the non-nil fields of patch. An empty patch returns the
// current row unchanged.
func (r *ListRepository) Update(ctx context.Context, id string, patch domain.ListPatch) (*domain.List, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := newSetClause()
	if patch.Title != nil {
		set.add("title", *patch.Title)
	}
	if patch.Slug != nil {
		set.add("slug", *patch.Slug)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.IsPublished != nil {
		set.add("is_published", *patch.IsPublished)
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	query := fmt.Sprintf(`UPDATE url_lists SET %s WHERE id = $%d RETURNING %s`,
		set.String(), set.next(), listColumns)

	list, err := scanList(r.db.QueryRow(ctx, query, append(set.args, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		if isSlugConflict(err) {
			return nil, domain.ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	return list, nil
}

// Delete removes the list and, by cascade, its URLs. It reports whether a
// row existed.
func (r *ListRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM url_lists WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete list: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// IsSlugAvailable reports whether no list other than excludeID uses slug.
// Pass an empty excludeID to check against every list.
func (r *ListRepository) IsSlugAvailable(ctx context.Context, slug, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	query := `SELECT EXISTS (SELECT 1 FROM url_lists WHERE slug = $1)`
	args := []interface{}{slug}
	if excludeID != "" {
		query = `SELECT EXISTS (SELECT 1 FROM url_lists WHERE slug = $1 AND id <> $2)`
		args = append(args, excludeID)
	}

	var taken bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check slug availability: %w", err)
	}

	return !taken, nil
}

func (r *ListRepository) Publish(ctx context.Context, id string) (*domain.List, error) {
	published := true
	return r.Update(ctx, id, domain.ListPatch{IsPublished: &published})
}

func (r *ListRepository) Unpublish(ctx context.Context, id string) (*domain.List, error) {
	published := false
	return r.Update(ctx, id, domain.ListPatch{IsPublished: &published})
}

// setClause builds "col = $n, ..." for partial updates.
type setClause struct {
	parts []string
	args  []interface{}
}

func newSetClause() *setClause {
	return &setClause{}
}

func (s *setClause) add(column string, value interface{}) {
	s.args = append(s.args, value)
	s.parts = append(s.parts, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setClause) next() int {
	return len(s.args) + 1
}

func (s *setClause) String() string {
	return strings.Join(s.parts, ", ")
}
