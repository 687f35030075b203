// Package nonce issues short action tokens tied to a site host and a time
// window, mirroring how WordPress protects one-shot admin actions. A token
// is valid for the window it was minted in plus the following one.
package nonce

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"
)

// tokenLen is the number of hex characters kept from the MAC.
const tokenLen = 10

// Service mints and verifies action tokens.
type Service struct {
	secret   []byte
	siteHost string
	lifetime time.Duration
	now      func() time.Time
}

// New creates a nonce service. Lifetime is the full validity span; tokens
// rotate at half of it.
func New(secret, siteHost string, lifetime time.Duration) *Service {
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	return &Service{
		secret:   []byte(secret),
		siteHost: siteHost,
		lifetime: lifetime,
		now:      time.Now,
	}
}

func (s *Service) tick(at time.Time) int64 {
	half := int64(s.lifetime / (2 * time.Second))
	if half <= 0 {
		half = 1
	}
	return at.Unix() / half
}

func (s *Service) mint(action string, tick int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d|%s|%s", tick, action, s.siteHost)
	return hex.EncodeToString(mac.Sum(nil))[:tokenLen]
}

// Create returns the token for the given action in the current window.
func (s *Service) Create(action string) string {
	return s.mint(action, s.tick(s.now()))
}

// Verify reports whether the token is valid for the action in the current
// or previous window.
func (s *Service) Verify(token, action string) bool {
	if len(token) != tokenLen {
		return false
	}
	tick := s.tick(s.now())
	for _, t := range []int64{tick, tick - 1} {
		want := s.mint(action, t)
		if subtle.ConstantTimeCompare([]byte(token), []byte(want)) == 1 {
			return true
		}
	}
	return false
}
