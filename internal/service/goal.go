package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/validation"
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) Goals(rider *model.Rider) ([]*model.Goal, error) {
	return s.repo.ByRider(rider.ID)
}

func (s *GoalService) Goal(rider *model.Rider, goalID string) (*model.Goal, error) {
	return s.repo.ByID(rider.ID, goalID)
}

func (s *GoalService) Create(rider *model.Rider, payload *validation.GoalPayload) (*model.Goal, error) {
	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		RiderID:     rider.ID,
		Title:       payload.Title,
		Description: payload.Description,
		Status:      model.GoalStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Update(rider *model.Rider, goalID string, payload *validation.GoalPayload) (*model.Goal, error) {
	goal, err := s.repo.ByID(rider.ID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Title = payload.Title
	goal.Description = payload.Description
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return goal, nil
}

// Complete marks the goal completed and stamps completed_at. Completing an
// already completed goal refreshes the timestamp, mirroring Reactivate.
func (s *GoalService) Complete(rider *model.Rider, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(rider.ID, goalID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goal.Status = model.GoalStatusCompleted
	goal.CompletedAt = &now
	goal.UpdatedAt = now

	err = s.repo.Update(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to complete goal: %w", err)
	}

	return goal, nil
}

// Reactivate is the inverse direction of the completion toggle: status back
// to active, completed_at cleared.
func (s *GoalService) Reactivate(rider *model.Rider, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(rider.ID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Status = model.GoalStatusActive
	goal.CompletedAt = nil
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to reactivate goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Delete(rider *model.Rider, goalID string) error {
	return s.repo.Delete(rider.ID, goalID)
}
