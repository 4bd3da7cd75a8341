package booking

// CanView reports whether the user may see the booking: only the booker and
// the item's owner qualify.
func CanView(b *Booking, userID string) bool {
	return b.BookerID == userID || b.OwnerID == userID
}

// CanApprove reports whether the user may decide on the booking: only the
// item's owner qualifies.
func CanApprove(b *Booking, userID string) bool {
	return b.OwnerID == userID
}
