package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cvfolio/backend/pkg/cv"
)

// The site serves a single portfolio, so the document table holds one row
// under a fixed key.
const documentKey = "default"

// CVRepository implements cv.Repository backed by PostgreSQL (pgx). The
// document is stored wholesale as JSONB; the service layer owns its shape.
type CVRepository struct {
	pool *pgxpool.Pool
}

func NewCVRepository(pool *pgxpool.Pool) (*CVRepository, error) {
	r := &CVRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CVRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS cv_documents (
	key TEXT PRIMARY KEY,
	data JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *CVRepository) Get(ctx context.Context) (cv.Document, error) {
	row := r.pool.QueryRow(ctx, `
SELECT data FROM cv_documents WHERE key = $1
`, documentKey)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cv.Document{}, cv.ErrNotFound
		}
		return cv.Document{}, err
	}
	var doc cv.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return cv.Document{}, err
	}
	return doc, nil
}

func (r *CVRepository) Save(ctx context.Context, doc cv.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO cv_documents (key, data, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
`, documentKey, data, time.Now().UTC())
	return err
}
