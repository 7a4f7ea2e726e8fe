package service

import (
	"testing"

	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReview() (*ReviewService, *fakeEntryRepo, *fakeCommentRepo) {
	entries := newFakeEntryRepo()
	comments := &fakeCommentRepo{}
	return NewReviewService(entries, comments, newFakeStorage()), entries, comments
}

func TestAlertedEntriesPartition(t *testing.T) {
	svc, entries, comments := newTestReview()

	pending := &model.Entry{ID: "e-1", RiderID: "r-1", AlertedMichelle: true}
	reviewed := &model.Entry{ID: "e-2", RiderID: "r-1", AlertedMichelle: true, CommentCount: 2}
	hidden := &model.Entry{ID: "e-3", RiderID: "r-1"}
	require.NoError(t, entries.Create(pending))
	require.NoError(t, entries.Create(reviewed))
	require.NoError(t, entries.Create(hidden))

	require.NoError(t, comments.Create(&model.Comment{ID: "c-1", EntryID: "e-2", Text: "Good seat."}))

	gotPending, gotReviewed, err := svc.AlertedEntries()
	require.NoError(t, err)

	require.Len(t, gotPending, 1)
	assert.Equal(t, "e-1", gotPending[0].ID)
	require.Len(t, gotReviewed, 1)
	assert.Equal(t, "e-2", gotReviewed[0].ID)
}

func TestReviewEntryHidesNonAlerted(t *testing.T) {
	svc, entries, _ := newTestReview()

	require.NoError(t, entries.Create(&model.Entry{ID: "e-1", RiderID: "r-1"}))

	// Not alerted: the trainer sees not-found, not forbidden.
	_, _, err := svc.Entry("e-1")
	assert.ErrorIs(t, err, repository.ErrEntryNotFound)

	require.NoError(t, entries.SetAlerted("e-1"))

	entry, entryComments, err := svc.Entry("e-1")
	require.NoError(t, err)
	assert.Equal(t, "e-1", entry.ID)
	assert.Empty(t, entryComments)
}

func TestAddComment(t *testing.T) {
	svc, entries, comments := newTestReview()

	require.NoError(t, entries.Create(&model.Entry{ID: "e-1", RiderID: "r-1", AlertedMichelle: true}))

	comment, err := svc.AddComment("e-1", "  Work on straightness.  ")
	require.NoError(t, err)

	assert.Equal(t, "Work on straightness.", comment.Text)
	assert.Equal(t, "e-1", comment.EntryID)
	assert.Len(t, comments.comments, 1)
}

func TestAddCommentEmptyRejected(t *testing.T) {
	svc, entries, _ := newTestReview()

	require.NoError(t, entries.Create(&model.Entry{ID: "e-1", AlertedMichelle: true}))

	_, err := svc.AddComment("e-1", "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestAddCommentNonAlertedRejected(t *testing.T) {
	svc, entries, comments := newTestReview()

	require.NoError(t, entries.Create(&model.Entry{ID: "e-1"}))

	_, err := svc.AddComment("e-1", "Nice work")
	assert.ErrorIs(t, err, repository.ErrEntryNotFound)
	assert.Empty(t, comments.comments)
}
