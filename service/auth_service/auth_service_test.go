package auth_service

import (
	"testing"
	"time"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[string]*model.User         // by id
	subs  map[string]*model.Subscription // by user id
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		users: make(map[string]*model.User),
		subs:  make(map[string]*model.Subscription),
	}
}

func (f *fakeUsers) CreateWithSubscription(user *model.User, sub *model.Subscription) error {
	cp := *user
	f.users[user.ID] = &cp
	sub.UserID = user.ID
	scp := *sub
	f.subs[user.ID] = &scp
	return nil
}

func (f *fakeUsers) GetByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeUsers) GetByID(id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newTestAuth() (*AuthService, *fakeUsers, *TokenService) {
	users := newFakeUsers()
	tokens := NewTokenService("test-secret", 7*24*time.Hour)
	return NewAuthService(users, tokens), users, tokens
}

func TestAuth_SignupCreatesIndieSubscription(t *testing.T) {
	svc, users, tokens := newTestAuth()

	user, token, err := svc.Signup("new@gg.play", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "new@gg.play", user.Email)
	assert.NotEqual(t, "secret1", user.Password)

	sub := users.subs[user.ID]
	require.NotNil(t, sub)
	assert.Equal(t, model.PlanIndie, sub.Plan)
	assert.Equal(t, 200, sub.MonthlyHours)
	assert.Equal(t, 0, sub.UsedHours)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestAuth_SignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuth()
	_, _, err := svc.Signup("new@gg.play", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Signup("new@gg.play", "other-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuth_LoginRoundTrip(t *testing.T) {
	svc, _, _ := newTestAuth()
	created, _, err := svc.Signup("new@gg.play", "secret1")
	require.NoError(t, err)

	user, token, err := svc.Login("new@gg.play", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuth()
	_, _, err := svc.Signup("new@gg.play", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Login("new@gg.play", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuth()

	_, _, err := svc.Login("nobody@gg.play", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_Me(t *testing.T) {
	svc, _, _ := newTestAuth()
	created, _, err := svc.Signup("new@gg.play", "secret1")
	require.NoError(t, err)

	user, err := svc.Me(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, user.Email)

	_, err = svc.Me("missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
