// SQLite-backed prediction history. Only the summary row persists; the
// coordinates themselves are ephemeral and live in the in-memory result
// store until evicted.

package db

import (
	"context"
	"database/sql"
	"time"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS predictions (
	id                TEXT PRIMARY KEY,
	sequence          TEXT NOT NULL,
	length            INTEGER NOT NULL,
	molecular_weight  REAL NOT NULL,
	instability_index REAL NOT NULL,
	created_at        TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions (created_at);
`

// HistoryDB records one row per successful prediction request.
type HistoryDB struct {
	db *sql.DB
}

// NewHistoryDB prepares the schema on the given connection.
func NewHistoryDB(db *sql.DB) (*HistoryDB, error) {
	if _, err := db.Exec(historySchema); err != nil {
		return nil, err
	}
	return &HistoryDB{db: db}, nil
}

// PredictionRecord is one history row.
type PredictionRecord struct {
	ID               string
	Sequence         string
	Length           int
	MolecularWeight  float64
	InstabilityIndex float64
	CreatedAt        time.Time
}

func (h *HistoryDB) Insert(ctx context.Context, rec PredictionRecord) error {

	qstring := `INSERT INTO predictions
		(id, sequence, length, molecular_weight, instability_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	stm, err := h.db.PrepareContext(ctx, qstring)
	if err != nil {
		return err
	}
	defer stm.Close()

	_, err = stm.ExecContext(ctx, rec.ID, rec.Sequence, rec.Length,
		rec.MolecularWeight, rec.InstabilityIndex, rec.CreatedAt)
	return err
}

// Recent returns the newest rows, newest first.
func (h *HistoryDB) Recent(ctx context.Context, limit int) ([]PredictionRecord, error) {

	qstring := `SELECT id, sequence, length, molecular_weight, instability_index, created_at
		FROM predictions
		ORDER BY created_at DESC, id
		LIMIT ?`

	stm, err := h.db.PrepareContext(ctx, qstring)
	if err != nil {
		return nil, err
	}
	defer stm.Close()

	rows, err := stm.QueryContext(ctx, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []PredictionRecord

	for rows.Next() {
		var rec PredictionRecord
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.Length,
			&rec.MolecularWeight, &rec.InstabilityIndex, &rec.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, rec)
	}

	return results, rows.Err()
}

func (h *HistoryDB) Close() error {
	return h.db.Close()
}
