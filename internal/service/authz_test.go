package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	owner := createTestUser(1, "owner", false)
	other := createTestUser(2, "other", false)
	admin := createTestUser(3, "admin", true)

	t.Run("Nil caller is rejected", func(t *testing.T) {
		assert.False(t, canModify(nil, 1))
	})

	t.Run("Owner can modify own content", func(t *testing.T) {
		assert.True(t, canModify(owner, 1))
	})

	t.Run("Non-owner cannot modify", func(t *testing.T) {
		assert.False(t, canModify(other, 1))
	})

	t.Run("Admin can modify anyone's content", func(t *testing.T) {
		assert.True(t, canModify(admin, 1))
	})

	t.Run("Admin can modify own content", func(t *testing.T) {
		assert.True(t, canModify(admin, 3))
	})
}
