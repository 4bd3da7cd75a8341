package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, h.Compare(hash, "hunter2"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		h := NewBcryptPasswordHasherWithCost(cost)
		assert.Equal(t, bcrypt.DefaultCost, h.cost, "cost %d", cost)
	}

	h := NewBcryptPasswordHasherWithCost(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, h.cost)
}
