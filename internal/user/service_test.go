package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshare/gearshare-backend/internal/auth"
)

type fakeRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*User{}, byEmail: map[string]*User{}}
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	if _, taken := r.byEmail[u.Email]; taken {
		return ErrEmailAlreadyUsed
	}
	r.nextID++
	u.ID = string(rune('a' + r.nextID))
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*User, error) {
	if u, ok := r.byID[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := r.byEmail[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) List(ctx context.Context) ([]*User, error) {
	out := make([]*User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, u *User) error {
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4)), repo
}

func TestCreateNormalizesEmail(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Create(context.Background(), CreateRequest{
		Name:  "  Boris ",
		Email: "  Boris@Example.COM ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Boris", u.Name)
	assert.Equal(t, "boris@example.com", u.Email)
	assert.Nil(t, u.PasswordHash, "password is optional")
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "Boris"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Create(ctx, CreateRequest{Email: "b@example.com"})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "Boris", Email: "b@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{Name: "Other", Email: "B@Example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Name:     "Boris",
		Email:    "b@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	u, err := svc.Login(ctx, "B@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = svc.Login(ctx, "b@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email gives the same error as a bad password.
	_, err = svc.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsPasswordlessAccount(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "Legacy", Email: "legacy@example.com"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "legacy@example.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateRequest{Name: "Boris", Email: "b@example.com"})
	require.NoError(t, err)

	name := "Borya"
	updated, err := svc.Update(ctx, u.ID, UpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Borya", updated.Name)
	assert.Equal(t, "b@example.com", updated.Email)

	blank := "  "
	_, err = svc.Update(ctx, u.ID, UpdateRequest{Name: &blank})
	assert.ErrorIs(t, err, ErrNameRequired)
}
