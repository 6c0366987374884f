package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.CartSession.Secret = secret
	cfg.CartSession.TTL = ttl

	return cfg
}

func TestCartSessionService_IssueAndVerify(t *testing.T) {
	svc, err := NewCartSessionService(newSessionConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, sessionID, err := svc.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The session ID is a freshly minted UUID.
	_, err = uuid.Parse(sessionID)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestCartSessionService_EachIssueIsUnique(t *testing.T) {
	svc, err := NewCartSessionService(newSessionConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, first, err := svc.Issue()
	require.NoError(t, err)
	_, second, err := svc.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCartSessionService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewCartSessionService(newSessionConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, _, err := svc.Issue()
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}

func TestCartSessionService_RejectsTokenFromOtherSecret(t *testing.T) {
	issuer, err := NewCartSessionService(newSessionConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewCartSessionService(newSessionConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, _, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestCartSessionService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewCartSessionService(newSessionConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	// A negative TTL falls back to the default, so craft the short-lived
	// service directly.
	short := &cartSessionService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, _, err := short.Issue()
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestCartSessionService_RequiresSecret(t *testing.T) {
	_, err := NewCartSessionService(newSessionConfig("", time.Hour))
	assert.Error(t, err)
}

func TestCartSessionService_RejectsGarbage(t *testing.T) {
	svc, err := NewCartSessionService(newSessionConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify("not-a-jwt")
	assert.Error(t, err)
}
