package comment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshare/gearshare-backend/internal/booking"
)

type fakeRepo struct {
	created []*Comment
	byItem  map[string][]*Comment
}

func (r *fakeRepo) Create(ctx context.Context, cm *Comment) error {
	cm.ID = "comment-1"
	cm.CreatedAt = time.Now()
	r.created = append(r.created, cm)
	return nil
}

func (r *fakeRepo) ListByItem(ctx context.Context, itemID string) ([]*Comment, error) {
	return r.byItem[itemID], nil
}

// fakeBookings reports an ended booking only for the (item, user) pairs in
// the map.
type fakeBookings struct {
	ended map[string]*booking.Booking
}

func (f *fakeBookings) LatestEndedForItemByUser(ctx context.Context, itemID, userID string) (*booking.Booking, error) {
	return f.ended[itemID+"/"+userID], nil
}

func TestCreateRequiresText(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeBookings{})

	_, err := svc.Create(context.Background(), "item-1", "user-1", "   ")
	assert.ErrorIs(t, err, ErrTextRequired)
}

func TestCreateRequiresEndedBooking(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeBookings{ended: map[string]*booking.Booking{}})

	_, err := svc.Create(context.Background(), "item-1", "user-1", "great drill")
	assert.ErrorIs(t, err, ErrNoCompletedBooking)
}

func TestCreateUsesBookerName(t *testing.T) {
	repo := &fakeRepo{}
	bookings := &fakeBookings{ended: map[string]*booking.Booking{
		"item-1/user-1": {ID: "b-1", BookerID: "user-1", BookerName: "Boris"},
	}}
	svc := NewService(repo, bookings)

	cm, err := svc.Create(context.Background(), "item-1", "user-1", "great drill")
	require.NoError(t, err)

	assert.Equal(t, "item-1", cm.ItemID)
	assert.Equal(t, "user-1", cm.AuthorID)
	assert.Equal(t, "Boris", cm.AuthorName)
	assert.Equal(t, "great drill", cm.Text)
	require.Len(t, repo.created, 1)
}
