package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshare/gearshare-backend/internal/pkg/pagination"
	"github.com/gearshare/gearshare-backend/internal/user"
)

type fakeRepo struct {
	items      map[string]*Item
	searchText string
}

func (r *fakeRepo) Create(ctx context.Context, it *Item) error {
	it.ID = "item-1"
	r.items[it.ID] = it
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Item, error) {
	if it, ok := r.items[id]; ok {
		clone := *it
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) Update(ctx context.Context, it *Item) error {
	r.items[it.ID] = it
	return nil
}

func (r *fakeRepo) ListByOwner(ctx context.Context, ownerID string, page pagination.PageSpec) ([]*Item, int, error) {
	return []*Item{}, 0, nil
}

func (r *fakeRepo) Search(ctx context.Context, text string, page pagination.PageSpec) ([]*Item, int, error) {
	r.searchText = text
	return []*Item{}, 0, nil
}

func (r *fakeRepo) ListByRequest(ctx context.Context, requestID string) ([]*Item, error) {
	return []*Item{}, nil
}

type fakeUserService struct {
	users map[string]*user.User
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserService) Create(ctx context.Context, req user.CreateRequest) (*user.User, error) {
	panic("not used")
}

func (f *fakeUserService) List(ctx context.Context) ([]*user.User, error) { panic("not used") }

func (f *fakeUserService) Update(ctx context.Context, id string, req user.UpdateRequest) (*user.User, error) {
	panic("not used")
}

func (f *fakeUserService) Delete(ctx context.Context, id string) error { panic("not used") }

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	panic("not used")
}

func fixture() (*fakeRepo, Service) {
	repo := &fakeRepo{items: map[string]*Item{}}
	users := &fakeUserService{users: map[string]*user.User{
		"owner-1": {ID: "owner-1", Name: "Olga"},
	}}
	return repo, NewService(repo, users)
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestCreateRequiresFields(t *testing.T) {
	_, svc := fixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{OwnerID: "owner-1", Description: "d", Available: boolPtr(true)})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateRequest{OwnerID: "owner-1", Name: "Drill", Available: boolPtr(true)})
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	_, err = svc.Create(ctx, CreateRequest{OwnerID: "owner-1", Name: "Drill", Description: "d"})
	assert.ErrorIs(t, err, ErrAvailableRequired)
}

func TestCreateRequiresKnownOwner(t *testing.T) {
	_, svc := fixture()

	_, err := svc.Create(context.Background(), CreateRequest{
		OwnerID: "ghost", Name: "Drill", Description: "d", Available: boolPtr(true),
	})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestCreateDenormalizesOwnerName(t *testing.T) {
	_, svc := fixture()

	it, err := svc.Create(context.Background(), CreateRequest{
		OwnerID: "owner-1", Name: "Drill", Description: "d", Available: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Olga", it.OwnerName)
}

func TestUpdateOwnerOnly(t *testing.T) {
	_, svc := fixture()
	ctx := context.Background()

	it, err := svc.Create(ctx, CreateRequest{
		OwnerID: "owner-1", Name: "Drill", Description: "d", Available: boolPtr(true),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, it.ID, "someone-else", UpdateRequest{Name: strPtr("Hammer")})
	assert.ErrorIs(t, err, ErrOnlyOwnerCanEdit)

	updated, err := svc.Update(ctx, it.ID, "owner-1", UpdateRequest{
		Name:      strPtr("Hammer"),
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hammer", updated.Name)
	assert.Equal(t, "d", updated.Description)
	assert.False(t, updated.Available)
}

func TestSearchBlankTextShortCircuits(t *testing.T) {
	repo, svc := fixture()

	items, total, err := svc.Search(context.Background(), "   ", pagination.All())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
	assert.Empty(t, repo.searchText, "repository must not be queried")
}

func TestListByOwnerRequiresKnownUser(t *testing.T) {
	_, svc := fixture()

	_, _, err := svc.ListByOwner(context.Background(), "ghost", pagination.All())
	assert.ErrorIs(t, err, user.ErrNotFound)
}
