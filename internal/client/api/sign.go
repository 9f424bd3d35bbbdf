package api

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Credentials is an API key pair for signed requests. The consumed endpoints
// work without one; signing is applied only when a pair is configured.
type Credentials struct {
	Key    string
	Secret string
}

// signer computes the platform's apiSig parameter:
//
//	hash   = SHA512("{rand}/{method}?{params}#{secret}")
//	apiSig = "{rand}{hex(hash)}"
//
// where params are the sorted query parameters including apiKey and time,
// and rand is a six-character nonce.
type signer struct {
	creds Credentials

	// test seams
	now     func() time.Time
	randHex func(n int) (string, error)
}

func newSigner(creds Credentials) *signer {
	return &signer{creds: creds, now: time.Now, randHex: makeRandHexString}
}

// makeRandHexString generates a random hexadecimal string of 2*size characters.
func makeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// sign returns a copy of params extended with apiKey, time and apiSig.
func (s *signer) sign(method string, params url.Values) (url.Values, error) {
	nonce, err := s.randHex(3)
	if err != nil {
		return nil, err
	}

	signed := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			signed.Add(k, v)
		}
	}
	signed.Set("apiKey", s.creds.Key)
	signed.Set("time", strconv.FormatInt(s.now().Unix(), 10))

	base := fmt.Sprintf("%s/%s?%s#%s", nonce, method, canonicalQuery(signed), s.creds.Secret)
	sum := sha512.Sum512([]byte(base))

	signed.Set("apiSig", nonce+hex.EncodeToString(sum[:]))
	return signed, nil
}

// canonicalQuery joins parameters as "k=v&k=v" with keys in lexicographic
// order and values unescaped, which is the form the digest is computed over.
func canonicalQuery(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range params[k] {
			pairs = append(pairs, k+"="+v)
		}
	}
	return strings.Join(pairs, "&")
}
