package service

import (
	"testing"
	"time"

	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRiderRepo struct {
	riders map[string]*model.Rider
}

func newFakeRiderRepo(riders ...*model.Rider) *fakeRiderRepo {
	r := &fakeRiderRepo{riders: map[string]*model.Rider{}}
	for _, rider := range riders {
		r.riders[rider.ID] = rider
	}
	return r
}

func (r *fakeRiderRepo) Create(rider *model.Rider) error {
	r.riders[rider.ID] = rider
	return nil
}

func (r *fakeRiderRepo) ByID(id string) (*model.Rider, error) {
	rider, ok := r.riders[id]
	if !ok {
		return nil, repository.ErrRiderNotFound
	}
	return rider, nil
}

func (r *fakeRiderRepo) ByIDAndHorse(id, horseID string) (*model.Rider, error) {
	rider, ok := r.riders[id]
	if !ok || rider.HorseID != horseID {
		return nil, repository.ErrRiderNotFound
	}
	return rider, nil
}

func (r *fakeRiderRepo) ByHorse(horseID string) ([]*model.Rider, error) {
	var out []*model.Rider
	for _, rider := range r.riders {
		if rider.HorseID == horseID {
			out = append(out, rider)
		}
	}
	return out, nil
}

func (r *fakeRiderRepo) All() ([]*model.Rider, error) {
	var out []*model.Rider
	for _, rider := range r.riders {
		out = append(out, rider)
	}
	return out, nil
}

func (r *fakeRiderRepo) Delete(id string) error {
	delete(r.riders, id)
	return nil
}

func newTestAuth(riders ...*model.Rider) *AuthService {
	return NewAuthService(
		newFakeRiderRepo(riders...),
		NewSharedSecretAuthenticator("michelle", "admin"),
		"test-secret",
		time.Hour,
		false,
	)
}

func TestSelectRider(t *testing.T) {
	rider := testRider()
	svc := newTestAuth(rider)

	found, err := svc.SelectRider("horse-1", "rider-1")
	require.NoError(t, err)
	assert.Equal(t, "Emma", found.Name)
}

func TestSelectRiderUniformFailure(t *testing.T) {
	rider := testRider()
	svc := newTestAuth(rider)

	// Unknown rider, mismatched pair, and blank input all fail identically.
	for _, tc := range []struct{ horseID, riderID string }{
		{"horse-1", "nope"},
		{"other-horse", "rider-1"},
		{"", "rider-1"},
		{"horse-1", ""},
	} {
		_, err := svc.SelectRider(tc.horseID, tc.riderID)
		assert.ErrorIs(t, err, ErrInvalidSelection, "horse=%q rider=%q", tc.horseID, tc.riderID)
	}
}

func TestAuthenticatorPlainSecrets(t *testing.T) {
	auth := NewSharedSecretAuthenticator("michelle", "admin")

	assert.NoError(t, auth.Authenticate(RoleTrainer, "michelle"))
	assert.NoError(t, auth.Authenticate(RoleAdmin, "admin"))

	assert.ErrorIs(t, auth.Authenticate(RoleTrainer, "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, auth.Authenticate(RoleAdmin, "michelle"), ErrInvalidCredentials)
	assert.ErrorIs(t, auth.Authenticate(RoleRider, "anything"), ErrInvalidCredentials)
}

func TestAuthenticatorBcryptSecrets(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := NewSharedSecretAuthenticator(string(hash), "admin")

	assert.NoError(t, auth.Authenticate(RoleTrainer, "s3cret"))
	assert.ErrorIs(t, auth.Authenticate(RoleTrainer, "wrong"), ErrInvalidCredentials)
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newTestAuth()

	token, err := svc.GenerateSession(RoleRider, "rider-1")
	require.NoError(t, err)

	claims, err := svc.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, RoleRider, claims.Role)
	assert.Equal(t, "rider-1", claims.RiderID)
}

func TestSessionTrainerHasNoRiderID(t *testing.T) {
	svc := newTestAuth()

	token, err := svc.GenerateSession(RoleTrainer, "")
	require.NoError(t, err)

	claims, err := svc.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, RoleTrainer, claims.Role)
	assert.Empty(t, claims.RiderID)
}

func TestSessionTamperedRejected(t *testing.T) {
	svc := newTestAuth()

	token, err := svc.GenerateSession(RoleAdmin, "")
	require.NoError(t, err)

	_, err = svc.VerifySession(token + "x")
	assert.Error(t, err)

	_, err = svc.VerifySession("not-a-token")
	assert.Error(t, err)
}

func TestSessionWrongSecretRejected(t *testing.T) {
	svc := newTestAuth()
	other := NewAuthService(newFakeRiderRepo(), NewSharedSecretAuthenticator("a", "b"), "other-secret", time.Hour, false)

	token, err := svc.GenerateSession(RoleRider, "rider-1")
	require.NoError(t, err)

	_, err = other.VerifySession(token)
	assert.Error(t, err)
}
