package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"solarwatch/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newPlantMock(t *testing.T) (*PlantSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewPlantSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func plantRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "location", "capacity_kw", "panels_count",
		"installation_date", "status", "daily_target_kwh", "updated_at",
	})
}

func TestPlantSQLite_List(t *testing.T) {
	repo, mock, cleanup := newPlantMock(t)
	defer cleanup()

	updated := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	rows := plantRows().
		AddRow("plant-003", "EcoSolar Gamma", "San Diego, CA", 300.0, 1200, "2021-06-01", models.PlantPartial, 1400.0, updated).
		AddRow("plant-001", "SolarField Alpha", "Phoenix, AZ", 500.0, 2000, "2020-03-15", models.PlantOperational, 2400.0, updated)
	mock.ExpectQuery(regexp.QuoteMeta(selectPlantsSQL)).WillReturnRows(rows)

	plants, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plants) != 2 {
		t.Fatalf("expected 2 plants, got %d", len(plants))
	}
	if plants[0].ID != "plant-003" || plants[0].Status != models.PlantPartial {
		t.Fatalf("unexpected first plant: %+v", plants[0])
	}
	if plants[1].CapacityKW != 500.0 {
		t.Fatalf("unexpected capacity: %v", plants[1].CapacityKW)
	}
}

func TestPlantSQLite_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newPlantMock(t)
		defer cleanup()

		updated := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
		rows := plantRows().
			AddRow("plant-001", "SolarField Alpha", "Phoenix, AZ", 500.0, 2000, "2020-03-15", models.PlantOperational, 2400.0, updated)
		mock.ExpectQuery(regexp.QuoteMeta(selectPlantByIDSQL)).
			WithArgs("plant-001").
			WillReturnRows(rows)

		p, err := repo.GetByID(context.Background(), "plant-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil || p.Name != "SolarField Alpha" {
			t.Fatalf("unexpected plant: %+v", p)
		}
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		repo, mock, cleanup := newPlantMock(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectPlantByIDSQL)).
			WithArgs("plant-404").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.GetByID(context.Background(), "plant-404")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != nil {
			t.Fatalf("expected nil plant, got %+v", p)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock, cleanup := newPlantMock(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectPlantByIDSQL)).
			WithArgs("plant-001").
			WillReturnError(errors.New("db down"))

		_, err := repo.GetByID(context.Background(), "plant-001")
		if err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestPlantSQLite_Count(t *testing.T) {
	repo, mock, cleanup := newPlantMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(countPlantsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
}

func TestPlantSQLite_MaintenanceSchedule(t *testing.T) {
	repo, mock, cleanup := newPlantMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "plant_id", "task", "scheduled_on", "status"}).
		AddRow("task-1", "plant-001", "Panel cleaning", "2026-09-01", models.TaskScheduled).
		AddRow("task-2", "plant-001", "Inverter inspection", "2026-09-15", models.TaskScheduled)
	mock.ExpectQuery(regexp.QuoteMeta(selectTasksSQL)).
		WithArgs("plant-001").
		WillReturnRows(rows)

	tasks, err := repo.MaintenanceSchedule(context.Background(), "plant-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Task != "Panel cleaning" {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
}

func TestPlantSQLite_AddMaintenanceTask_GeneratesID(t *testing.T) {
	repo, mock, cleanup := newPlantMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertTaskSQL)).
		WithArgs(sqlmock.AnyArg(), "plant-001", "Panel cleaning", "2026-09-01", models.TaskScheduled).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AddMaintenanceTask(context.Background(), models.MaintenanceTask{
		PlantID:     "plant-001",
		Task:        "Panel cleaning",
		ScheduledOn: "2026-09-01",
		Status:      models.TaskScheduled,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
