// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/spinwheel/models"
)

var (
	// ErrNotFound means the prize id does not exist (or was deleted
	// between selection and recording).
	ErrNotFound = errors.New("prize not found")
	// ErrQuotaExceeded means the prize sold out before the win could be
	// recorded. Recoverable: the caller should refresh its pool.
	ErrQuotaExceeded = errors.New("prize quota exceeded")
)

const prizeColumns = `id, name, color, quota, won, win_percentage, image_url, sort_index, created_at, updated_at`

// Store is the durable prize catalog and the single owner of the
// won <= quota invariant. All writes to won go through IncrementWon.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// List returns every prize in wheel order.
func (s *Store) List(ctx context.Context) ([]models.Prize, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+prizeColumns+` FROM prizes ORDER BY sort_index ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list prizes: %w", err)
	}
	defer rows.Close()

	prizes := []models.Prize{}
	for rows.Next() {
		p, err := scanPrize(rows)
		if err != nil {
			return nil, err
		}
		prizes = append(prizes, p)
	}
	return prizes, rows.Err()
}

// Get returns a single prize by id.
func (s *Store) Get(ctx context.Context, id string) (models.Prize, error) {
	if !validID(id) {
		return models.Prize{}, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, `
		SELECT `+prizeColumns+` FROM prizes WHERE id = $1
	`, id)
	p, err := scanPrize(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Prize{}, ErrNotFound
	}
	return p, err
}

// Create inserts a prize. A nil SortIndex appends it to the end of the
// wheel; a nil Won starts the counter at zero.
func (s *Store) Create(ctx context.Context, input models.PrizeInput) (models.Prize, error) {
	won := 0
	if input.Won != nil {
		won = *input.Won
	}
	var image *string
	if input.Image != nil && *input.Image != "" {
		image = input.Image
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO prizes (id, name, color, quota, won, win_percentage, image_url, sort_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
		        COALESCE($8, (SELECT COALESCE(MAX(sort_index) + 1, 0) FROM prizes)))
		RETURNING `+prizeColumns+`
	`, uuid.New().String(), input.Name, input.Color, input.Quota, won, input.WinPercentage, image, input.SortIndex)
	return scanPrize(row)
}

// Update applies a partial edit; nil fields keep their stored value. An
// empty image string clears the image. Concurrent admin edits are last
// write wins.
func (s *Store) Update(ctx context.Context, id string, update models.PrizeUpdate) (models.Prize, error) {
	if !validID(id) {
		return models.Prize{}, ErrNotFound
	}
	clearImage := update.Image != nil && *update.Image == ""
	var image *string
	if update.Image != nil && *update.Image != "" {
		image = update.Image
	}
	row := s.db.QueryRowContext(ctx, `
		UPDATE prizes
		   SET name = COALESCE($2, name),
		       color = COALESCE($3, color),
		       quota = COALESCE($4, quota),
		       won = COALESCE($5, won),
		       win_percentage = COALESCE($6, win_percentage),
		       image_url = CASE WHEN $7 THEN NULL ELSE COALESCE($8, image_url) END,
		       sort_index = COALESCE($9, sort_index),
		       updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+prizeColumns+`
	`, id, update.Name, update.Color, update.Quota, update.Won, update.WinPercentage, clearImage, image, update.SortIndex)
	p, err := scanPrize(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Prize{}, ErrNotFound
	}
	return p, err
}

// Delete removes a prize.
func (s *Store) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM prizes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prize: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder applies new sort indexes in one transaction and returns the
// refreshed list.
func (s *Store) Reorder(ctx context.Context, order []models.PrizeOrder) ([]models.Prize, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range order {
		if !validID(entry.ID) {
			return nil, ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE prizes SET sort_index = $2, updated_at = NOW() WHERE id = $1
		`, entry.ID, entry.SortIndex); err != nil {
			return nil, fmt.Errorf("reorder prize %s: %w", entry.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reorder: %w", err)
	}
	return s.List(ctx)
}

// IncrementWon records a win for the prize. The increment is a single
// conditional update so two spins racing for the last unit cannot both
// succeed: the row is only touched while won < quota. A miss is split
// into ErrNotFound vs ErrQuotaExceeded with a follow-up probe.
func (s *Store) IncrementWon(ctx context.Context, id string) (models.Prize, error) {
	if !validID(id) {
		return models.Prize{}, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, `
		UPDATE prizes
		   SET won = won + 1, updated_at = NOW()
		 WHERE id = $1 AND won < quota
		 RETURNING `+prizeColumns+`
	`, id)
	p, err := scanPrize(row)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Prize{}, err
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM prizes WHERE id = $1)
	`, id).Scan(&exists); err != nil {
		return models.Prize{}, fmt.Errorf("probe prize: %w", err)
	}
	if !exists {
		return models.Prize{}, ErrNotFound
	}
	return models.Prize{}, ErrQuotaExceeded
}

// ResetWon zeroes every won counter and returns the refreshed list.
// Idempotent: running it twice yields the same state.
func (s *Store) ResetWon(ctx context.Context) ([]models.Prize, error) {
	if _, err := s.db.ExecContext(ctx, `UPDATE prizes SET won = 0, updated_at = NOW()`); err != nil {
		return nil, fmt.Errorf("reset won: %w", err)
	}
	return s.List(ctx)
}

// validID rejects non-UUID ids before they reach Postgres, which would
// otherwise error on the uuid column instead of reporting not-found.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrize(row rowScanner) (models.Prize, error) {
	var p models.Prize
	var image sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.Color, &p.Quota, &p.Won, &p.WinPercentage,
		&image, &p.SortIndex, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Prize{}, err
	}
	if image.Valid {
		p.Image = &image.String
	}
	return p, nil
}
