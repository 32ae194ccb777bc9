package services

import (
	"testing"
	"time"

	"task_management_ms/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSessionRepo struct {
	rows map[string]*domain.SessionToken
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: map[string]*domain.SessionToken{}}
}

func (f *fakeSessionRepo) Insert(_ *gorm.DB, session *domain.SessionToken) error {
	f.rows[session.Id] = session
	return nil
}

func (f *fakeSessionRepo) FindByID(_ *gorm.DB, id string) (*domain.SessionToken, error) {
	session, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionRepo) Delete(_ *gorm.DB, id string) error {
	delete(f.rows, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) GetByName(_ *gorm.DB, name string) (*domain.User, error) {
	user, ok := f.users[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetOrCreateByName(db *gorm.DB, name string) (*domain.User, error) {
	return f.GetByName(db, name)
}

func (f *fakeUserRepo) GetByNameWithPasskeys(db *gorm.DB, name string) (*domain.User, error) {
	return f.GetByName(db, name)
}

func TestIssueAndVerifySession(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := &fakeUserRepo{users: map[string]*domain.User{"alice": {Id: 1, Name: "alice"}}}
	svc := NewSessionService(nil, sessions, users, 0)

	id, err := svc.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Nil(t, sessions.rows[id].ExpiresAt, "ttl 0 sessions must not expire")

	user, err := svc.Verify(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}

func TestIssueSetsExpiryWhenConfigured(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := &fakeUserRepo{users: map[string]*domain.User{"alice": {Id: 1, Name: "alice"}}}
	svc := NewSessionService(nil, sessions, users, time.Hour)

	id, err := svc.Issue("alice")
	require.NoError(t, err)

	expires := sessions.rows[id].ExpiresAt
	require.NotNil(t, expires)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *expires, time.Minute)
}

func TestVerifyExpiredSessionReaps(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := &fakeUserRepo{users: map[string]*domain.User{"alice": {Id: 1, Name: "alice"}}}
	svc := NewSessionService(nil, sessions, users, 0)

	past := time.Now().Add(-time.Minute)
	sessions.rows["stale"] = &domain.SessionToken{Id: "stale", Username: "alice", ExpiresAt: &past}

	user, err := svc.Verify("stale")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Nil(t, user)
	assert.NotContains(t, sessions.rows, "stale")
}

func TestVerifyUnknownSession(t *testing.T) {
	svc := NewSessionService(nil, newFakeSessionRepo(), &fakeUserRepo{users: map[string]*domain.User{}}, 0)

	user, err := svc.Verify("never-issued")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Nil(t, user)
}

func TestVerifySessionForDeletedUser(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := &fakeUserRepo{users: map[string]*domain.User{}}
	svc := NewSessionService(nil, sessions, users, 0)

	id, err := svc.Issue("ghost")
	require.NoError(t, err)

	user, err := svc.Verify(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Nil(t, user)
}

func TestRevokeSession(t *testing.T) {
	sessions := newFakeSessionRepo()
	users := &fakeUserRepo{users: map[string]*domain.User{"alice": {Id: 1, Name: "alice"}}}
	svc := NewSessionService(nil, sessions, users, 0)

	id, err := svc.Issue("alice")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(id))

	_, err = svc.Verify(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
