package service

import (
	"context"
	"errors"

	"solarwatch/internal/models"
	"solarwatch/internal/repository"
)

// ErrPlantNotFound is returned for unknown plant ids.
var ErrPlantNotFound = errors.New("plant not found")

type PlantService struct {
	plantRepo repository.PlantRepo
}

func NewPlantService(plantRepo repository.PlantRepo) *PlantService {
	return &PlantService{plantRepo: plantRepo}
}

// List returns all registered plants.
func (s *PlantService) List(ctx context.Context) ([]models.Plant, error) {
	return s.plantRepo.List(ctx)
}

// Details returns a plant with its maintenance schedule.
func (s *PlantService) Details(ctx context.Context, plantID string) (*PlantDetails, error) {
	plant, err := s.plantRepo.GetByID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, ErrPlantNotFound
	}

	schedule, err := s.plantRepo.MaintenanceSchedule(ctx, plantID)
	if err != nil {
		return nil, err
	}

	return &PlantDetails{Plant: *plant, MaintenanceSchedule: schedule}, nil
}
