package itemrequest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshare/gearshare-backend/internal/item"
	"github.com/gearshare/gearshare-backend/internal/pkg/pagination"
	"github.com/gearshare/gearshare-backend/internal/user"
)

type fakeRepo struct {
	requests map[string]*Request
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: map[string]*Request{}}
}

func (r *fakeRepo) Create(ctx context.Context, req *Request) error {
	r.nextID++
	req.ID = string(rune('a' + r.nextID))
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Request, error) {
	if req, ok := r.requests[id]; ok {
		clone := *req
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) ListByRequester(ctx context.Context, requesterID string) ([]*Request, error) {
	out := []*Request{}
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			clone := *req
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOthers(ctx context.Context, requesterID string, page pagination.PageSpec) ([]*Request, int, error) {
	out := []*Request{}
	for _, req := range r.requests {
		if req.RequesterID != requesterID {
			clone := *req
			out = append(out, &clone)
		}
	}
	return out, len(out), nil
}

// fakeItemRepo answers ListByRequest from a map; other methods are unused.
type fakeItemRepo struct {
	byRequest map[string][]*item.Item
}

func (f *fakeItemRepo) Create(ctx context.Context, it *item.Item) error { panic("not used") }

func (f *fakeItemRepo) GetByID(ctx context.Context, id string) (*item.Item, error) {
	panic("not used")
}

func (f *fakeItemRepo) Update(ctx context.Context, it *item.Item) error { panic("not used") }

func (f *fakeItemRepo) ListByOwner(ctx context.Context, ownerID string, page pagination.PageSpec) ([]*item.Item, int, error) {
	panic("not used")
}

func (f *fakeItemRepo) Search(ctx context.Context, text string, page pagination.PageSpec) ([]*item.Item, int, error) {
	panic("not used")
}

func (f *fakeItemRepo) ListByRequest(ctx context.Context, requestID string) ([]*item.Item, error) {
	items := f.byRequest[requestID]
	if items == nil {
		items = []*item.Item{}
	}
	return items, nil
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

func fixture() (*fakeRepo, *fakeItemRepo, Service) {
	repo := newFakeRepo()
	items := &fakeItemRepo{byRequest: map[string][]*item.Item{}}
	users := &fakeUserService{users: map[string]*user.User{
		"user-1": {ID: "user-1", Name: "Rita"},
		"user-2": {ID: "user-2", Name: "Oleg"},
	}}
	return repo, items, NewService(repo, items, users)
}

func TestCreateRequiresDescription(t *testing.T) {
	_, _, svc := fixture()

	_, err := svc.Create(context.Background(), "user-1", "   ")
	assert.ErrorIs(t, err, ErrDescriptionRequired)
}

func TestCreateRequiresKnownRequester(t *testing.T) {
	_, _, svc := fixture()

	_, err := svc.Create(context.Background(), "ghost", "need a drill")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestCreateDenormalizesRequesterName(t *testing.T) {
	_, _, svc := fixture()

	req, err := svc.Create(context.Background(), "user-1", "need a drill")
	require.NoError(t, err)
	assert.Equal(t, "Rita", req.RequesterName)
}

func TestGetByIDIncludesAnswers(t *testing.T) {
	_, items, svc := fixture()
	ctx := context.Background()

	req, err := svc.Create(ctx, "user-1", "need a drill")
	require.NoError(t, err)
	items.byRequest[req.ID] = []*item.Item{{ID: "item-1", Name: "Drill"}}

	rwa, err := svc.GetByID(ctx, req.ID, "user-2")
	require.NoError(t, err)
	assert.Equal(t, req.ID, rwa.Request.ID)
	require.Len(t, rwa.Answers, 1)
	assert.Equal(t, "Drill", rwa.Answers[0].Name)
}

func TestGetByIDRequiresKnownUser(t *testing.T) {
	_, _, svc := fixture()
	ctx := context.Background()

	req, err := svc.Create(ctx, "user-1", "need a drill")
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, req.ID, "ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestListOthersExcludesOwn(t *testing.T) {
	_, _, svc := fixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", "need a drill")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", "need a ladder")
	require.NoError(t, err)

	requests, total, err := svc.ListOthers(ctx, "user-1", pagination.All())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, requests, 1)
	assert.Equal(t, "user-2", requests[0].RequesterID)
}
