package repository

import (
	"context"
	"fmt"

	"solarwatch/internal/models"
)

// Seed data stands in for a fleet registration flow; loaded once into an
// empty database so the dashboard has plants to show.

var seedPlants = []models.Plant{
	{
		ID:               "plant-001",
		Name:             "SolarField Alpha",
		Location:         "Phoenix, AZ",
		CapacityKW:       500,
		PanelsCount:      1500,
		InstallationDate: "2019-06-15",
		Status:           models.PlantOperational,
		DailyTargetKWh:   2500,
	},
	{
		ID:               "plant-002",
		Name:             "SunPower Beta",
		Location:         "Las Vegas, NV",
		CapacityKW:       750,
		PanelsCount:      2250,
		InstallationDate: "2020-03-20",
		Status:           models.PlantOperational,
		DailyTargetKWh:   3750,
	},
	{
		ID:               "plant-003",
		Name:             "EcoSolar Gamma",
		Location:         "San Diego, CA",
		CapacityKW:       300,
		PanelsCount:      900,
		InstallationDate: "2021-01-10",
		Status:           models.PlantPartial,
		DailyTargetKWh:   1500,
	},
}

var seedTasks = []models.MaintenanceTask{
	{PlantID: "plant-001", Task: "Panel Cleaning", ScheduledOn: "2026-09-15", Status: models.TaskScheduled},
	{PlantID: "plant-001", Task: "Inverter Inspection", ScheduledOn: "2026-10-01", Status: models.TaskScheduled},
	{PlantID: "plant-002", Task: "Wiring Check", ScheduledOn: "2026-08-10", Status: models.TaskCompleted},
	{PlantID: "plant-002", Task: "Annual Maintenance", ScheduledOn: "2026-10-15", Status: models.TaskScheduled},
	{PlantID: "plant-003", Task: "Inverter Replacement", ScheduledOn: "2026-09-05", Status: models.TaskInProgress},
	{PlantID: "plant-003", Task: "Site Inspection", ScheduledOn: "2026-09-25", Status: models.TaskScheduled},
}

var seedPanels = []models.Panel{
	{
		ID: "P001", PlantID: "plant-001", PanelType: models.PanelMonocrystalline,
		Manufacturer: "SunPower", Model: "Maxeon 3", InstalledOn: "2022-05-10",
		RatedWatts: 400, InitialEfficiencyPct: 22.0, CurrentEfficiencyPct: 20.1,
		OperatingTempC: 48.5, Soiling: models.SoilingLight,
	},
	{
		ID: "P002", PlantID: "plant-001", PanelType: models.PanelPolycrystalline,
		Manufacturer: "Canadian Solar", Model: "CS6K-300MS", InstalledOn: "2021-08-18",
		RatedWatts: 300, InitialEfficiencyPct: 17.8, CurrentEfficiencyPct: 15.2,
		OperatingTempC: 52.0, Soiling: models.SoilingModerate,
	},
	{
		ID: "P003", PlantID: "plant-002", PanelType: models.PanelBifacial,
		Manufacturer: "Longi Solar", Model: "LR4-60HPB-365M", InstalledOn: "2023-01-05",
		RatedWatts: 365, InitialEfficiencyPct: 21.0, CurrentEfficiencyPct: 20.5,
		OperatingTempC: 45.0, Soiling: models.SoilingNone,
	},
	{
		ID: "P004", PlantID: "plant-002", PanelType: models.PanelThinFilm,
		Manufacturer: "First Solar", Model: "Series 6", InstalledOn: "2020-11-22",
		RatedWatts: 420, InitialEfficiencyPct: 18.0, CurrentEfficiencyPct: 16.2,
		OperatingTempC: 50.0, Soiling: models.SoilingHeavy,
	},
	{
		ID: "P005", PlantID: "plant-003", PanelType: models.PanelPERC,
		Manufacturer: "JinkoSolar", Model: "Eagle 66TR G4", InstalledOn: "2021-03-15",
		RatedWatts: 380, InitialEfficiencyPct: 19.5, CurrentEfficiencyPct: 17.8,
		OperatingTempC: 49.0, Soiling: models.SoilingModerate,
	},
}

var seedMaintenance = []models.PanelMaintenance{
	{PanelID: "P001", PerformedOn: "2025-01-15", Kind: models.MaintCleaning, Note: "Routine cleaning", Technician: "C. Silva", Cost: 120},
	{PanelID: "P001", PerformedOn: "2025-07-22", Kind: models.MaintInspection, Note: "Semi-annual inspection", Technician: "M. Oliveira", Cost: 80},
	{PanelID: "P002", PerformedOn: "2025-02-15", Kind: models.MaintRepair, Note: "Replaced damaged connectors", Technician: "J. Almeida", Cost: 220},
	{PanelID: "P004", PerformedOn: "2025-04-02", Kind: models.MaintRepair, Note: "Repaired deteriorated sealant", Technician: "C. Silva", Cost: 250},
	{PanelID: "P005", PerformedOn: "2025-01-18", Kind: models.MaintCleaning, Note: "Routine cleaning", Technician: "M. Oliveira", Cost: 120},
}

var seedProblems = []models.PanelProblem{
	{PanelID: "P001", DetectedOn: "2025-05-02", Kind: models.ProblemHotspot, Severity: models.SeverityLow, Description: "Small hotspot in upper-right corner"},
	{PanelID: "P002", DetectedOn: "2025-01-30", Kind: models.ProblemCorrosion, Severity: models.SeverityMedium, Description: "Corrosion along panel edges"},
	{PanelID: "P004", DetectedOn: "2025-03-28", Kind: models.ProblemDelamination, Severity: models.SeverityMedium, Description: "Delamination detected along bottom edge"},
	{PanelID: "P004", DetectedOn: "2025-03-28", Kind: models.ProblemDiscoloration, Severity: models.SeverityMedium, Description: "Discoloration on roughly 10% of the area"},
	{PanelID: "P005", DetectedOn: "2024-12-05", Kind: models.ProblemPID, Severity: models.SeverityLow, Description: "Early signs of potential-induced degradation"},
}

// SeedIfEmpty loads the sample fleet when the plants table has no rows.
func (r *Repository) SeedIfEmpty(ctx context.Context) error {
	n, err := r.Plants.Count(ctx)
	if err != nil {
		return fmt.Errorf("count plants: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, p := range seedPlants {
		if err := r.Plants.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed plant %s: %w", p.ID, err)
		}
	}
	for _, t := range seedTasks {
		if err := r.Plants.AddMaintenanceTask(ctx, t); err != nil {
			return fmt.Errorf("seed task for %s: %w", t.PlantID, err)
		}
	}
	for _, p := range seedPanels {
		if err := r.Panels.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed panel %s: %w", p.ID, err)
		}
	}
	for _, m := range seedMaintenance {
		if err := r.Panels.AddMaintenance(ctx, m); err != nil {
			return fmt.Errorf("seed maintenance for %s: %w", m.PanelID, err)
		}
	}
	for _, p := range seedProblems {
		if err := r.Panels.AddProblem(ctx, p); err != nil {
			return fmt.Errorf("seed problem for %s: %w", p.PanelID, err)
		}
	}
	return nil
}
