package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/storage"
	"github.com/stablebook/stablebook/internal/validation"
)

// RosterService manages the horse and rider roster for the administrator.
type RosterService struct {
	horseRepo repository.HorseRepository
	riderRepo repository.RiderRepository
	storage   storage.Storage
}

func NewRosterService(
	horseRepo repository.HorseRepository,
	riderRepo repository.RiderRepository,
	storage storage.Storage,
) *RosterService {
	return &RosterService{
		horseRepo: horseRepo,
		riderRepo: riderRepo,
		storage:   storage,
	}
}

func (s *RosterService) Horses() ([]*model.Horse, error) {
	return s.horseRepo.All()
}

func (s *RosterService) Horse(id string) (*model.Horse, error) {
	return s.horseRepo.ByID(id)
}

// CreateHorse adds a horse with an optional photo. Horse names are unique
// across the stable.
func (s *RosterService) CreateHorse(name string, photo multipart.File, header *multipart.FileHeader) (*model.Horse, error) {
	err := validation.ValidateName(name)
	if err != nil {
		return nil, err
	}

	var photoPath *string
	if photo != nil && header != nil {
		err := validation.ValidateImage(header)
		if err != nil {
			return nil, err
		}

		p := path.Join("horse_photos", uuid.New().String()+path.Ext(header.Filename))
		err = s.storage.Save(p, photo)
		if err != nil {
			return nil, fmt.Errorf("failed to save photo: %w", err)
		}
		photoPath = &p
	}

	horse := &model.Horse{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		PhotoPath: photoPath,
		CreatedAt: time.Now(),
	}

	err = s.horseRepo.Create(horse)
	if err != nil {
		if photoPath != nil {
			delErr := s.storage.Delete(*photoPath)
			if delErr != nil {
				slog.Error("failed to delete photo during cleanup", "error", delErr, "path", *photoPath)
			}
		}
		return nil, err
	}

	return horse, nil
}

// DeleteHorse removes a horse; its riders and events go with it via cascade,
// and each deleted rider's entries and goals cascade in turn.
func (s *RosterService) DeleteHorse(id string) error {
	horse, err := s.horseRepo.ByID(id)
	if err != nil {
		return err
	}

	err = s.horseRepo.Delete(horse.ID)
	if err != nil {
		return err
	}

	if horse.PhotoPath != nil {
		delErr := s.storage.Delete(*horse.PhotoPath)
		if delErr != nil {
			slog.Warn("failed to delete horse photo from storage", "error", delErr, "path", *horse.PhotoPath)
		}
	}

	return nil
}

func (s *RosterService) Riders() ([]*model.Rider, error) {
	return s.riderRepo.All()
}

// RidersForHorse backs both the login selector and the riders JSON API.
func (s *RosterService) RidersForHorse(horseID string) ([]*model.Rider, error) {
	_, err := s.horseRepo.ByID(horseID)
	if err != nil {
		return nil, err
	}
	return s.riderRepo.ByHorse(horseID)
}

// CreateRider adds a rider to a horse. The (name, horse) pair is unique.
func (s *RosterService) CreateRider(name, horseID string) (*model.Rider, error) {
	err := validation.ValidateName(name)
	if err != nil {
		return nil, err
	}

	horse, err := s.horseRepo.ByID(horseID)
	if err != nil {
		return nil, err
	}

	rider := &model.Rider{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		HorseID:   horse.ID,
		CreatedAt: time.Now(),
	}

	err = s.riderRepo.Create(rider)
	if err != nil {
		return nil, err
	}
	rider.HorseName = horse.Name

	return rider, nil
}

// DeleteRider removes a rider. Entries and goals cascade away; events the
// rider created survive with their creator reference cleared.
func (s *RosterService) DeleteRider(id string) error {
	return s.riderRepo.Delete(id)
}

// PhotoURL resolves the storage URL for a horse photo path.
func (s *RosterService) PhotoURL(photoPath *string) string {
	if photoPath == nil || *photoPath == "" {
		return ""
	}
	return s.storage.URL(*photoPath)
}
