package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/storage"
	"github.com/stablebook/stablebook/internal/validation"
)

var (
	// ErrNotOwner is returned when a rider touches an entry that belongs to
	// another rider. The content must not be exposed alongside it.
	ErrNotOwner = errors.New("not the owner of this entry")

	// ErrNotificationFailed wraps a delivery failure after the alert flag was
	// already persisted: "saved, but notification failed".
	ErrNotificationFailed = errors.New("notification failed")
)

type JournalService struct {
	entryRepo   repository.EntryRepository
	commentRepo repository.CommentRepository
	storage     storage.Storage
	notifier    Notifier
}

func NewJournalService(
	entryRepo repository.EntryRepository,
	commentRepo repository.CommentRepository,
	storage storage.Storage,
	notifier Notifier,
) *JournalService {
	return &JournalService{
		entryRepo:   entryRepo,
		commentRepo: commentRepo,
		storage:     storage,
		notifier:    notifier,
	}
}

// CreateEntry records a journal entry for the rider. Text and image may both
// be empty; there is no required-field constraint on entries.
func (s *JournalService) CreateEntry(rider *model.Rider, text string, image multipart.File, header *multipart.FileHeader) (*model.Entry, error) {
	var imagePath *string
	if image != nil && header != nil {
		err := validation.ValidateImage(header)
		if err != nil {
			return nil, err
		}

		p := path.Join("journal_images", uuid.New().String()+path.Ext(header.Filename))
		err = s.storage.Save(p, image)
		if err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		imagePath = &p
	}

	now := time.Now()
	entry := &model.Entry{
		ID:              uuid.New().String(),
		RiderID:         rider.ID,
		TextContent:     text,
		ImagePath:       imagePath,
		AlertedMichelle: false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.entryRepo.Create(entry)
	if err != nil {
		if imagePath != nil {
			delErr := s.storage.Delete(*imagePath)
			if delErr != nil {
				slog.Error("failed to delete image during cleanup", "error", delErr, "path", *imagePath)
			}
		}
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return entry, nil
}

// Entries returns the rider's own entries, newest first.
func (s *JournalService) Entries(rider *model.Rider) ([]*model.Entry, error) {
	return s.entryRepo.ByRider(rider.ID)
}

// Entry loads one entry with its comments, enforcing ownership. A rider who
// does not own the entry gets ErrNotOwner and no content.
func (s *JournalService) Entry(rider *model.Rider, entryID string) (*model.Entry, []*model.Comment, error) {
	entry, err := s.entryRepo.ByID(entryID)
	if err != nil {
		return nil, nil, err
	}

	if entry.RiderID != rider.ID {
		return nil, nil, ErrNotOwner
	}

	comments, err := s.commentRepo.ByEntry(entry.ID)
	if err != nil {
		return nil, nil, err
	}

	return entry, comments, nil
}

// Alert marks the entry for trainer review and notifies the trainer.
// The flag transition is monotonic and idempotent, but every call attempts
// one notification send, matching the long-standing reminder behavior.
// A failed send never rolls back the flag; it surfaces as
// ErrNotificationFailed so the caller can report "saved, but not delivered".
func (s *JournalService) Alert(rider *model.Rider, entryID string) (*model.Entry, error) {
	entry, err := s.entryRepo.ByID(entryID)
	if err != nil {
		return nil, err
	}

	if entry.RiderID != rider.ID {
		return nil, ErrNotOwner
	}

	err = s.entryRepo.SetAlerted(entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to alert entry: %w", err)
	}
	entry.AlertedMichelle = true

	err = s.notifier.NotifyEntryAlert(rider.Name, rider.HorseName, entry.CreatedAt, entry.Preview())
	if err != nil {
		slog.Warn("entry alert notification failed", "error", err, "entry_id", entry.ID, "rider_id", rider.ID)
		return entry, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	return entry, nil
}

// ImageURL resolves the storage URL for an entry image path.
func (s *JournalService) ImageURL(imagePath *string) string {
	if imagePath == nil || *imagePath == "" {
		return ""
	}
	return s.storage.URL(*imagePath)
}
