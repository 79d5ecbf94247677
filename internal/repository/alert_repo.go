package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"solarwatch/internal/models"

	"github.com/google/uuid"
)

type AlertSQLite struct {
	db *sql.DB
}

func NewAlertSQLite(db *sql.DB) *AlertSQLite { return &AlertSQLite{db: db} }

var _ AlertRepo = (*AlertSQLite)(nil)

const (
	insertAlertSQL = `
		INSERT INTO alerts (id, plant_id, level, title, message, created_at, acknowledged, resolved_at, resolution)
		VALUES (?, ?, ?, ?, ?, ?, 0, NULL, NULL)
	`

	selectAlertCols = `id, plant_id, level, title, message, created_at, acknowledged, resolved_at, resolution`

	acknowledgeAlertSQL = `
		UPDATE alerts SET acknowledged = 1, resolved_at = ?, resolution = ?
		WHERE id = ? AND acknowledged = 0
	`

	activeExistsSQL = `
		SELECT COUNT(*) FROM alerts WHERE plant_id = ? AND title = ? AND acknowledged = 0
	`
)

// Create inserts an active alert. Generates ID/CreatedAt when empty.
func (r *AlertSQLite) Create(ctx context.Context, a models.Alert) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	} else {
		a.CreatedAt = a.CreatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertAlertSQL,
		a.ID,
		a.PlantID,
		a.Level,
		a.Title,
		a.Message,
		a.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	return err
}

// ListActive returns unacknowledged alerts, newest first, optionally
// filtered by plant and level.
func (r *AlertSQLite) ListActive(ctx context.Context, plantID, level string) ([]models.Alert, error) {
	conds := []string{"acknowledged = 0"}
	var args []any

	if plantID != "" {
		conds = append(conds, "plant_id = ?")
		args = append(args, plantID)
	}
	if level != "" {
		conds = append(conds, "level = ?")
		args = append(args, level)
	}

	q := `SELECT ` + selectAlertCols + ` FROM alerts WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC`

	return r.queryAlerts(ctx, q, args...)
}

// ListHistory returns acknowledged alerts created at or after since,
// newest first, optionally filtered by plant and level.
func (r *AlertSQLite) ListHistory(ctx context.Context, plantID, level string, since time.Time) ([]models.Alert, error) {
	conds := []string{"acknowledged = 1"}
	var args []any

	if plantID != "" {
		conds = append(conds, "plant_id = ?")
		args = append(args, plantID)
	}
	if level != "" {
		conds = append(conds, "level = ?")
		args = append(args, level)
	}
	if !since.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, since.UTC())
	}

	q := `SELECT ` + selectAlertCols + ` FROM alerts WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC`

	return r.queryAlerts(ctx, q, args...)
}

// Acknowledge marks an active alert resolved. Returns false when the alert
// does not exist or is already acknowledged.
func (r *AlertSQLite) Acknowledge(ctx context.Context, id string, at time.Time, resolution string) (bool, error) {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, acknowledgeAlertSQL, at.UTC().Format("2006-01-02 15:04:05"), resolution, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ActiveExists reports whether an unacknowledged alert with the same title
// is already open for the plant. Used to dedup threshold alerts.
func (r *AlertSQLite) ActiveExists(ctx context.Context, plantID, title string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, activeExistsSQL, plantID, title).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *AlertSQLite) queryAlerts(ctx context.Context, q string, args ...any) ([]models.Alert, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Alert, 0, 16)
	for rows.Next() {
		var a models.Alert
		var resolvedAt sql.NullTime
		var resolution sql.NullString
		if err := rows.Scan(
			&a.ID,
			&a.PlantID,
			&a.Level,
			&a.Title,
			&a.Message,
			&a.CreatedAt,
			&a.Acknowledged,
			&resolvedAt,
			&resolution,
		); err != nil {
			return nil, err
		}
		a.CreatedAt = a.CreatedAt.UTC()
		if resolvedAt.Valid {
			t := resolvedAt.Time.UTC()
			a.ResolvedAt = &t
		}
		if resolution.Valid {
			a.Resolution = resolution.String
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
