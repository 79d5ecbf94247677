package repository

import (
	"context"
	"database/sql"
	"errors"

	"solarwatch/internal/models"

	"github.com/google/uuid"
)

type PanelSQLite struct {
	db *sql.DB
}

func NewPanelSQLite(db *sql.DB) *PanelSQLite { return &PanelSQLite{db: db} }

var _ PanelRepo = (*PanelSQLite)(nil)

const (
	selectPanelCols = `id, plant_id, panel_type, manufacturer, model, installed_on, rated_watts, initial_efficiency_pct, current_efficiency_pct, operating_temp_c, soiling`

	selectPanelsByPlantSQL = `SELECT ` + selectPanelCols + ` FROM panels WHERE plant_id = ? ORDER BY id ASC`

	selectAllPanelsSQL = `SELECT ` + selectPanelCols + ` FROM panels ORDER BY id ASC`

	selectPanelByIDSQL = `SELECT ` + selectPanelCols + ` FROM panels WHERE id = ?`

	upsertPanelSQL = `
		INSERT INTO panels (id, plant_id, panel_type, manufacturer, model, installed_on, rated_watts, initial_efficiency_pct, current_efficiency_pct, operating_temp_c, soiling)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			plant_id=excluded.plant_id,
			panel_type=excluded.panel_type,
			manufacturer=excluded.manufacturer,
			model=excluded.model,
			installed_on=excluded.installed_on,
			rated_watts=excluded.rated_watts,
			initial_efficiency_pct=excluded.initial_efficiency_pct,
			current_efficiency_pct=excluded.current_efficiency_pct,
			operating_temp_c=excluded.operating_temp_c,
			soiling=excluded.soiling
	`

	selectMaintenanceSQL = `
		SELECT id, panel_id, performed_on, kind, note, technician, cost
		FROM panel_maintenance WHERE panel_id = ? ORDER BY performed_on ASC
	`

	selectProblemsSQL = `
		SELECT id, panel_id, detected_on, kind, severity, description
		FROM panel_problems WHERE panel_id = ? ORDER BY detected_on ASC
	`

	insertMaintenanceSQL = `
		INSERT INTO panel_maintenance (id, panel_id, performed_on, kind, note, technician, cost)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	insertProblemSQL = `
		INSERT INTO panel_problems (id, panel_id, detected_on, kind, severity, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`
)

func scanPanel(row interface{ Scan(...any) error }) (models.Panel, error) {
	var p models.Panel
	err := row.Scan(
		&p.ID,
		&p.PlantID,
		&p.PanelType,
		&p.Manufacturer,
		&p.Model,
		&p.InstalledOn,
		&p.RatedWatts,
		&p.InitialEfficiencyPct,
		&p.CurrentEfficiencyPct,
		&p.OperatingTempC,
		&p.Soiling,
	)
	return p, err
}

// List returns panels, optionally restricted to one plant.
func (r *PanelSQLite) List(ctx context.Context, plantID string) ([]models.Panel, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if plantID == "" {
		rows, err = r.db.QueryContext(ctx, selectAllPanelsSQL)
	} else {
		rows, err = r.db.QueryContext(ctx, selectPanelsByPlantSQL, plantID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Panel, 0, 16)
	for rows.Next() {
		p, err := scanPanel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches one panel. Returns (nil, nil) if not found.
func (r *PanelSQLite) GetByID(ctx context.Context, id string) (*models.Panel, error) {
	p, err := scanPanel(r.db.QueryRowContext(ctx, selectPanelByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or replaces a panel row.
func (r *PanelSQLite) Upsert(ctx context.Context, p models.Panel) error {
	_, err := r.db.ExecContext(ctx, upsertPanelSQL,
		p.ID,
		p.PlantID,
		p.PanelType,
		p.Manufacturer,
		p.Model,
		p.InstalledOn,
		p.RatedWatts,
		p.InitialEfficiencyPct,
		p.CurrentEfficiencyPct,
		p.OperatingTempC,
		p.Soiling,
	)
	return err
}

// Maintenance returns the panel's maintenance records, oldest first.
func (r *PanelSQLite) Maintenance(ctx context.Context, panelID string) ([]models.PanelMaintenance, error) {
	rows, err := r.db.QueryContext(ctx, selectMaintenanceSQL, panelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.PanelMaintenance, 0, 8)
	for rows.Next() {
		var m models.PanelMaintenance
		if err := rows.Scan(&m.ID, &m.PanelID, &m.PerformedOn, &m.Kind, &m.Note, &m.Technician, &m.Cost); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Problems returns the panel's detected problems, oldest first.
func (r *PanelSQLite) Problems(ctx context.Context, panelID string) ([]models.PanelProblem, error) {
	rows, err := r.db.QueryContext(ctx, selectProblemsSQL, panelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.PanelProblem, 0, 8)
	for rows.Next() {
		var p models.PanelProblem
		if err := rows.Scan(&p.ID, &p.PanelID, &p.DetectedOn, &p.Kind, &p.Severity, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AddMaintenance inserts a maintenance record. Generates the ID when empty.
func (r *PanelSQLite) AddMaintenance(ctx context.Context, m models.PanelMaintenance) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, insertMaintenanceSQL, m.ID, m.PanelID, m.PerformedOn, m.Kind, m.Note, m.Technician, m.Cost)
	return err
}

// AddProblem inserts a problem record. Generates the ID when empty.
func (r *PanelSQLite) AddProblem(ctx context.Context, p models.PanelProblem) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, insertProblemSQL, p.ID, p.PanelID, p.DetectedOn, p.Kind, p.Severity, p.Description)
	return err
}
