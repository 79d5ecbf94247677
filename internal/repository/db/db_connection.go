package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaPlants = `
CREATE TABLE IF NOT EXISTS plants (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    location TEXT NOT NULL,
    capacity_kw REAL NOT NULL,
    panels_count INTEGER NOT NULL,
    installation_date TEXT NOT NULL,
    status TEXT NOT NULL,
    daily_target_kwh REAL NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaTelemetry = `
CREATE TABLE IF NOT EXISTS telemetry (
    id TEXT PRIMARY KEY,
    plant_id TEXT NOT NULL REFERENCES plants(id),
    recorded_at TIMESTAMP NOT NULL,
    power_kw REAL NOT NULL,
    irradiance_wm2 REAL NOT NULL,
    ambient_temp_c REAL NOT NULL,
    efficiency_pct REAL NOT NULL,
    performance_ratio_pct REAL NOT NULL
);
`

const schemaTelemetryIdx = `
CREATE INDEX IF NOT EXISTS idx_telemetry_plant_time ON telemetry (plant_id, recorded_at);
`

const schemaAlerts = `
CREATE TABLE IF NOT EXISTS alerts (
    id TEXT PRIMARY KEY,
    plant_id TEXT NOT NULL REFERENCES plants(id),
    level TEXT NOT NULL,
    title TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    acknowledged BOOLEAN NOT NULL DEFAULT 0,
    resolved_at TIMESTAMP,
    resolution TEXT
);
`

const schemaPanels = `
CREATE TABLE IF NOT EXISTS panels (
    id TEXT PRIMARY KEY,
    plant_id TEXT NOT NULL REFERENCES plants(id),
    panel_type TEXT NOT NULL,
    manufacturer TEXT NOT NULL,
    model TEXT NOT NULL,
    installed_on TEXT NOT NULL,
    rated_watts REAL NOT NULL,
    initial_efficiency_pct REAL NOT NULL,
    current_efficiency_pct REAL NOT NULL,
    operating_temp_c REAL NOT NULL,
    soiling TEXT NOT NULL
);
`

const schemaPanelMaintenance = `
CREATE TABLE IF NOT EXISTS panel_maintenance (
    id TEXT PRIMARY KEY,
    panel_id TEXT NOT NULL REFERENCES panels(id),
    performed_on TEXT NOT NULL,
    kind TEXT NOT NULL,
    note TEXT NOT NULL,
    technician TEXT NOT NULL,
    cost REAL NOT NULL
);
`

const schemaPanelProblems = `
CREATE TABLE IF NOT EXISTS panel_problems (
    id TEXT PRIMARY KEY,
    panel_id TEXT NOT NULL REFERENCES panels(id),
    detected_on TEXT NOT NULL,
    kind TEXT NOT NULL,
    severity TEXT NOT NULL,
    description TEXT NOT NULL
);
`

const schemaMaintenanceTasks = `
CREATE TABLE IF NOT EXISTS maintenance_tasks (
    id TEXT PRIMARY KEY,
    plant_id TEXT NOT NULL REFERENCES plants(id),
    task TEXT NOT NULL,
    scheduled_on TEXT NOT NULL,
    status TEXT NOT NULL
);
`

const schemaChatMessages = `
CREATE TABLE IF NOT EXISTS chat_messages (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    role TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

const schemaChatMessagesIdx = `
CREATE INDEX IF NOT EXISTS idx_chat_session_time ON chat_messages (session_id, created_at);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaPlants,
		schemaTelemetry,
		schemaTelemetryIdx,
		schemaAlerts,
		schemaPanels,
		schemaPanelMaintenance,
		schemaPanelProblems,
		schemaMaintenanceTasks,
		schemaChatMessages,
		schemaChatMessagesIdx,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
