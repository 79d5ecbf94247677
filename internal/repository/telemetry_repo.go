package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"solarwatch/internal/models"

	"github.com/google/uuid"
)

type TelemetrySQLite struct {
	db *sql.DB
}

func NewTelemetrySQLite(db *sql.DB) *TelemetrySQLite { return &TelemetrySQLite{db: db} }

var _ TelemetryRepo = (*TelemetrySQLite)(nil)

const (
	insertTelemetrySQL = `
		INSERT INTO telemetry (id, plant_id, recorded_at, power_kw, irradiance_wm2, ambient_temp_c, efficiency_pct, performance_ratio_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectLatestTelemetrySQL = `
		SELECT id, plant_id, recorded_at, power_kw, irradiance_wm2, ambient_temp_c, efficiency_pct, performance_ratio_pct
		FROM telemetry WHERE plant_id = ? ORDER BY recorded_at DESC LIMIT 1
	`

	// Average power per hour-of-day; a 1-hour average of kW equals kWh for that hour.
	selectHourlyStatsSQL = `
		SELECT strftime('%H', recorded_at) AS hr, AVG(power_kw)
		FROM telemetry
		WHERE plant_id = ? AND recorded_at >= ? AND recorded_at <= ?
		GROUP BY hr ORDER BY hr ASC
	`

	selectDailyStatsSQL = `
		SELECT strftime('%Y-%m-%d', recorded_at) AS day, AVG(power_kw), AVG(efficiency_pct), AVG(performance_ratio_pct)
		FROM telemetry
		WHERE plant_id = ? AND recorded_at >= ? AND recorded_at <= ?
		GROUP BY day ORDER BY day ASC
	`

	selectPowerExtremesSQL = `
		SELECT COALESCE(MAX(power_kw), 0), COALESCE(AVG(power_kw), 0)
		FROM telemetry
		WHERE plant_id = ? AND recorded_at >= ? AND recorded_at <= ? AND power_kw > 0
	`
)

// Append inserts a reading. If ID or RecordedAt are empty, they're set.
func (r *TelemetrySQLite) Append(ctx context.Context, rec models.TelemetryRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now().UTC()
	} else {
		rec.RecordedAt = rec.RecordedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertTelemetrySQL,
		rec.ID,
		rec.PlantID,
		rec.RecordedAt.Format("2006-01-02 15:04:05"),
		rec.PowerKW,
		rec.IrradianceWM2,
		rec.AmbientTempC,
		rec.EfficiencyPct,
		rec.PerformanceRatioPct,
	)
	return err
}

// Latest returns the newest reading for a plant. (nil, nil) when none exist.
func (r *TelemetrySQLite) Latest(ctx context.Context, plantID string) (*models.TelemetryRecord, error) {
	row := r.db.QueryRowContext(ctx, selectLatestTelemetrySQL, plantID)

	var rec models.TelemetryRecord
	err := row.Scan(
		&rec.ID,
		&rec.PlantID,
		&rec.RecordedAt,
		&rec.PowerKW,
		&rec.IrradianceWM2,
		&rec.AmbientTempC,
		&rec.EfficiencyPct,
		&rec.PerformanceRatioPct,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rec.RecordedAt = rec.RecordedAt.UTC()
	return &rec, nil
}

// HourlyStats returns hour-of-day average power buckets within [from, to].
func (r *TelemetrySQLite) HourlyStats(ctx context.Context, plantID string, from, to time.Time) ([]HourlyStat, error) {
	rows, err := r.db.QueryContext(ctx, selectHourlyStatsSQL, plantID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HourlyStat, 0, 24)
	for rows.Next() {
		var hr string
		var st HourlyStat
		if err := rows.Scan(&hr, &st.AvgPowerKW); err != nil {
			return nil, err
		}
		h, err := strconv.Atoi(hr)
		if err != nil {
			return nil, err
		}
		st.Hour = h
		out = append(out, st)
	}
	return out, rows.Err()
}

// DailyStats returns per-day averages within [from, to], ordered by date.
func (r *TelemetrySQLite) DailyStats(ctx context.Context, plantID string, from, to time.Time) ([]DailyStat, error) {
	rows, err := r.db.QueryContext(ctx, selectDailyStatsSQL, plantID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DailyStat, 0, 32)
	for rows.Next() {
		var st DailyStat
		if err := rows.Scan(&st.Date, &st.AvgPowerKW, &st.AvgEfficiencyPct, &st.AvgPerformanceRatioPct); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// PowerExtremes returns the peak and the average of non-zero power readings.
func (r *TelemetrySQLite) PowerExtremes(ctx context.Context, plantID string, from, to time.Time) (float64, float64, error) {
	var peak, avg float64
	err := r.db.QueryRowContext(ctx, selectPowerExtremesSQL, plantID, from.UTC(), to.UTC()).Scan(&peak, &avg)
	if err != nil {
		return 0, 0, err
	}
	return peak, avg, nil
}
