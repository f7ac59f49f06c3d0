package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityScope(t *testing.T) {
	ctx := context.Background()

	_, scoped := EntityScope(ctx)
	assert.False(t, scoped)
	assert.True(t, CanAccessEntity(ctx, 42))

	ctx = WithEntityScope(ctx, 7)
	entityID, scoped := EntityScope(ctx)
	assert.True(t, scoped)
	assert.Equal(t, uint(7), entityID)
	assert.True(t, CanAccessEntity(ctx, 7))
	assert.False(t, CanAccessEntity(ctx, 8))
}
