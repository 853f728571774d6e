package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYield(t *testing.T) {
	assert.NoError(t, Yield(context.Background(), 0))
	assert.NoError(t, Yield(context.Background(), -1))
	assert.NoError(t, Yield(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.ErrorIs(t, Yield(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
