package user_test

import (
	"context"
	"file-catalog/internal/model/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectory(t *testing.T) {
	t.Run("lookup by id", func(t *testing.T) {
		d := user.NewDirectory(user.DemoUsers())

		u, ok := d.Get("analyst2")
		assert.True(t, ok)
		assert.Equal(t, "Sarah Chen", u.Name)
		assert.Equal(t, "schen@company.com", u.Email)

		_, ok = d.Get("nobody")
		assert.False(t, ok)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		d := user.NewDirectory(user.DemoUsers())
		list := d.List()
		assert.Len(t, list, 12)

		list[0].Name = "changed"
		assert.Equal(t, "John Smith", d.List()[0].Name)
	})
}

func TestDirectory_Source(t *testing.T) {
	d := user.NewDirectory(user.DemoUsers())
	ctx := context.Background()

	u, err := d.GetUser(ctx, "klee")
	assert.NoError(t, err)
	assert.Equal(t, "Karen Lee", u.Name)

	_, err = d.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)

	all, err := d.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 12)
}
