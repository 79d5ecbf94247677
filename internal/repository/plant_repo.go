package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"solarwatch/internal/models"

	"github.com/google/uuid"
)

type PlantSQLite struct {
	db *sql.DB
}

func NewPlantSQLite(db *sql.DB) *PlantSQLite { return &PlantSQLite{db: db} }

var _ PlantRepo = (*PlantSQLite)(nil)

const (
	selectPlantCols = `id, name, location, capacity_kw, panels_count, installation_date, status, daily_target_kwh, updated_at`

	selectPlantsSQL = `SELECT ` + selectPlantCols + ` FROM plants ORDER BY name ASC`

	selectPlantByIDSQL = `SELECT ` + selectPlantCols + ` FROM plants WHERE id = ?`

	upsertPlantSQL = `
		INSERT INTO plants (id, name, location, capacity_kw, panels_count, installation_date, status, daily_target_kwh, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			location=excluded.location,
			capacity_kw=excluded.capacity_kw,
			panels_count=excluded.panels_count,
			installation_date=excluded.installation_date,
			status=excluded.status,
			daily_target_kwh=excluded.daily_target_kwh,
			updated_at=excluded.updated_at
	`

	countPlantsSQL = `SELECT COUNT(*) FROM plants`

	selectTasksSQL = `
		SELECT id, plant_id, task, scheduled_on, status
		FROM maintenance_tasks WHERE plant_id = ? ORDER BY scheduled_on ASC
	`

	insertTaskSQL = `
		INSERT INTO maintenance_tasks (id, plant_id, task, scheduled_on, status)
		VALUES (?, ?, ?, ?, ?)
	`
)

func scanPlant(row interface{ Scan(...any) error }) (models.Plant, error) {
	var p models.Plant
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Location,
		&p.CapacityKW,
		&p.PanelsCount,
		&p.InstallationDate,
		&p.Status,
		&p.DailyTargetKWh,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.Plant{}, err
	}
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

// List returns all plants ordered by name.
func (r *PlantSQLite) List(ctx context.Context) ([]models.Plant, error) {
	rows, err := r.db.QueryContext(ctx, selectPlantsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Plant, 0, 8)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches one plant. Returns (nil, nil) if not found.
func (r *PlantSQLite) GetByID(ctx context.Context, id string) (*models.Plant, error) {
	p, err := scanPlant(r.db.QueryRowContext(ctx, selectPlantByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or replaces a plant row.
func (r *PlantSQLite) Upsert(ctx context.Context, p models.Plant) error {
	ts := p.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}
	_, err := r.db.ExecContext(ctx, upsertPlantSQL,
		p.ID,
		p.Name,
		p.Location,
		p.CapacityKW,
		p.PanelsCount,
		p.InstallationDate,
		p.Status,
		p.DailyTargetKWh,
		ts,
	)
	return err
}

// Count returns the number of plant rows (used to decide seeding).
func (r *PlantSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countPlantsSQL).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// MaintenanceSchedule returns the plant's tasks ordered by date.
func (r *PlantSQLite) MaintenanceSchedule(ctx context.Context, plantID string) ([]models.MaintenanceTask, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksSQL, plantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.MaintenanceTask, 0, 8)
	for rows.Next() {
		var t models.MaintenanceTask
		if err := rows.Scan(&t.ID, &t.PlantID, &t.Task, &t.ScheduledOn, &t.Status); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// AddMaintenanceTask inserts a task. Generates the ID when empty.
func (r *PlantSQLite) AddMaintenanceTask(ctx context.Context, t models.MaintenanceTask) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, insertTaskSQL, t.ID, t.PlantID, t.Task, t.ScheduledOn, t.Status)
	return err
}
