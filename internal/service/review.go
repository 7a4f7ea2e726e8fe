package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/storage"
)

var (
	ErrEmptyComment = errors.New("comment text is required")
)

// ReviewService implements the trainer's side of the workflow. Entries that
// were never alerted do not exist from the trainer's perspective: lookups on
// them report not-found, not a permission failure.
type ReviewService struct {
	entryRepo   repository.EntryRepository
	commentRepo repository.CommentRepository
	storage     storage.Storage
}

func NewReviewService(entryRepo repository.EntryRepository, commentRepo repository.CommentRepository, storage storage.Storage) *ReviewService {
	return &ReviewService{
		entryRepo:   entryRepo,
		commentRepo: commentRepo,
		storage:     storage,
	}
}

// AlertedEntries returns all alerted entries newest-first, split into the
// two disjoint dashboard views: pending (no comments yet) and reviewed.
func (s *ReviewService) AlertedEntries() (pending, reviewed []*model.Entry, err error) {
	entries, err := s.entryRepo.Alerted()
	if err != nil {
		return nil, nil, err
	}

	for _, entry := range entries {
		if entry.CommentCount == 0 {
			pending = append(pending, entry)
		} else {
			reviewed = append(reviewed, entry)
		}
	}

	return pending, reviewed, nil
}

// Entry loads an alerted entry with its comments. A non-alerted entry is
// invisible here and reports repository.ErrEntryNotFound.
func (s *ReviewService) Entry(entryID string) (*model.Entry, []*model.Comment, error) {
	entry, err := s.entryRepo.AlertedByID(entryID)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.commentRepo.ByEntry(entry.ID)
	if err != nil {
		return nil, nil, err
	}

	return entry, comments, nil
}

// AddComment attaches a trainer comment to an alerted entry. Commenting on
// an entry that is not alerted fails as not-found.
func (s *ReviewService) AddComment(entryID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	entry, err := s.entryRepo.AlertedByID(entryID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.New().String(),
		EntryID:   entry.ID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	err = s.commentRepo.Create(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ImageURL resolves the storage URL for an entry image path.
func (s *ReviewService) ImageURL(imagePath *string) string {
	if imagePath == nil || *imagePath == "" {
		return ""
	}
	return s.storage.URL(*imagePath)
}
