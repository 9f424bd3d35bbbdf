package api

import (
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignProducesExpectedSignature(t *testing.T) {
	s := newSigner(Credentials{Key: "key", Secret: "secret"})
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	s.randHex = func(n int) (string, error) { return "123456", nil }

	params := url.Values{}
	params.Set("handles", "tourist")

	signed, err := s.sign("user.info", params)
	require.NoError(t, err)

	assert.Equal(t, "key", signed.Get("apiKey"))
	assert.Equal(t, "1700000000", signed.Get("time"))

	// digest over "{rand}/{method}?{sorted params}#{secret}"
	base := "123456/user.info?apiKey=key&handles=tourist&time=1700000000#secret"
	sum := sha512.Sum512([]byte(base))
	assert.Equal(t, "123456"+hex.EncodeToString(sum[:]), signed.Get("apiSig"))

	// input params must not be mutated
	assert.Empty(t, params.Get("apiKey"))
}

func TestCanonicalQuerySortsKeys(t *testing.T) {
	params := url.Values{}
	params.Set("time", "1")
	params.Set("apiKey", "k")
	params.Set("handles", "a b")

	assert.Equal(t, "apiKey=k&handles=a b&time=1", canonicalQuery(params))
}

func TestSignedRequestCarriesSignature(t *testing.T) {
	c := NewHTTPClient("https://example.com/api", nil, WithCredentials(Credentials{Key: "k", Secret: "s"}))

	u, err := c.endpointURL("user.info", url.Values{"handles": {"tourist"}})
	require.NoError(t, err)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "k", q.Get("apiKey"))
	assert.NotEmpty(t, q.Get("time"))
	require.NotEmpty(t, q.Get("apiSig"))
	// six-character nonce + 128 hex chars of SHA-512
	assert.Len(t, q.Get("apiSig"), 6+128)
}
