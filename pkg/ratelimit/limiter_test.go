package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"business-admin/pkg/ratelimit"
)

func TestLimiterAllow(t *testing.T) {
	rl := ratelimit.New(ratelimit.Config{RequestsPerMin: 60, Burst: 2})

	assert.NoError(t, rl.Allow("biz-1"))
	assert.NoError(t, rl.Allow("biz-1"))
	assert.Error(t, rl.Allow("biz-1"), "third request inside the burst window must be rejected")

	// keys are independent
	assert.NoError(t, rl.Allow("biz-2"))
}

func TestLimiterMinimumBurst(t *testing.T) {
	rl := ratelimit.New(ratelimit.Config{RequestsPerMin: 5})
	assert.NoError(t, rl.Allow("k"))
}
