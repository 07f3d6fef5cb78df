package common

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalidQuery, KindOf(InvalidQuery("sport is required")))
	assert.Equal(t, KindRateLimited, KindOf(RateLimited(0, nil)))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestAsGatewayError_WrappedChain(t *testing.T) {
	inner := CredentialRejected(errors.New("HTTP 401"))
	wrapped := fmt.Errorf("fetch odds: %w", inner)

	ge, ok := AsGatewayError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindCredentialRejected, ge.Kind)
}

func TestRateLimited_CarriesHint(t *testing.T) {
	err := RateLimited(17*time.Second, errors.New("HTTP 429"))
	assert.Equal(t, 17*time.Second, err.RetryAfter)
}

func TestError_MessageIsSafe(t *testing.T) {
	err := UpstreamUnavailable(errors.New("dial tcp 10.0.0.1:443: connection refused"))

	// Error() carries the cause for logs, Message stays generic for callers
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotContains(t, err.Message, "connection refused")
	assert.ErrorContains(t, err, "upstream provider unavailable")
}
