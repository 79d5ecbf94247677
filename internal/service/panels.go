package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"
)

// Domain errors for panel flows.
var (
	ErrPanelNotFound      = errors.New("panel not found")
	errInvalidMaintKind   = fmt.Errorf("%w: maintenance kind must be Cleaning, Inspection, Repair, or Replacement", ErrValidation)
	errInvalidProblemKind = fmt.Errorf("%w: unknown problem kind", ErrValidation)
	errInvalidSeverity    = fmt.Errorf("%w: severity must be Low, Medium, or High", ErrValidation)
	errMissingDescription = fmt.Errorf("%w: problem description is required", ErrValidation)
)

type PanelService struct {
	panelRepo repository.PanelRepo
}

func NewPanelService(panelRepo repository.PanelRepo) *PanelService {
	return &PanelService{panelRepo: panelRepo}
}

var _ Panels = (*PanelService)(nil)

// List returns panels, optionally restricted to one plant.
func (s *PanelService) List(ctx context.Context, plantID string) ([]models.Panel, error) {
	return s.panelRepo.List(ctx, plantID)
}

// Detail returns a panel with its maintenance and problem history.
func (s *PanelService) Detail(ctx context.Context, panelID string) (*models.PanelDetail, error) {
	panel, err := s.panelRepo.GetByID(ctx, panelID)
	if err != nil {
		return nil, err
	}
	if panel == nil {
		return nil, ErrPanelNotFound
	}

	maint, err := s.panelRepo.Maintenance(ctx, panelID)
	if err != nil {
		return nil, fmt.Errorf("load maintenance history: %w", err)
	}
	problems, err := s.panelRepo.Problems(ctx, panelID)
	if err != nil {
		return nil, fmt.Errorf("load problem history: %w", err)
	}

	return &models.PanelDetail{Panel: *panel, Maintenance: maint, Problems: problems}, nil
}

// AddMaintenance validates and records a maintenance entry for a panel.
func (s *PanelService) AddMaintenance(ctx context.Context, m models.PanelMaintenance) error {
	if !models.ValidMaintenanceKind(m.Kind) {
		return errInvalidMaintKind
	}
	if m.PerformedOn == "" {
		m.PerformedOn = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", m.PerformedOn); err != nil {
		return fmt.Errorf("%w: performed_on date %q must be YYYY-MM-DD", ErrValidation, m.PerformedOn)
	}

	if err := s.requirePanel(ctx, m.PanelID); err != nil {
		return err
	}
	return s.panelRepo.AddMaintenance(ctx, m)
}

// AddProblem validates and records a detected problem for a panel.
func (s *PanelService) AddProblem(ctx context.Context, p models.PanelProblem) error {
	if !models.ValidProblemKind(p.Kind) {
		return errInvalidProblemKind
	}
	if !models.ValidSeverity(p.Severity) {
		return errInvalidSeverity
	}
	if p.Description == "" {
		return errMissingDescription
	}
	if p.DetectedOn == "" {
		p.DetectedOn = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", p.DetectedOn); err != nil {
		return fmt.Errorf("%w: detected_on date %q must be YYYY-MM-DD", ErrValidation, p.DetectedOn)
	}

	if err := s.requirePanel(ctx, p.PanelID); err != nil {
		return err
	}
	return s.panelRepo.AddProblem(ctx, p)
}

func (s *PanelService) requirePanel(ctx context.Context, panelID string) error {
	panel, err := s.panelRepo.GetByID(ctx, panelID)
	if err != nil {
		return err
	}
	if panel == nil {
		return ErrPanelNotFound
	}
	return nil
}
