// Copyright 2025 The Filmrate Authors, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"filmrate/pkg/frerrors"
	"filmrate/pkg/log"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an issued credential. A token is self-contained:
// verification needs only the shared secret, no session store.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer credentials used by every
// authenticated endpoint. Both operations are pure functions of
// (input, secret, now) and are safe for concurrent use.
type TokenService interface {
	// Generate signs a token asserting username, expiring after the
	// configured TTL. Fails only for an empty username.
	Generate(username string) (string, time.Time, error)

	// ParseHeader verifies a raw Authorization header value and returns
	// the asserted username. The "Bearer" scheme word is tolerated
	// loosely: the second whitespace-separated field is taken as the
	// token whatever the first says.
	ParseHeader(raw string) (string, error)

	// Parse verifies a bare token string.
	Parse(token string) (string, error)
}

var _ TokenService = (*tokenServiceImpl)(nil)

type tokenServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *log.Logger
}

type TokenOption func(*tokenServiceImpl)

// WithTimeFunc overrides the clock, for expiry tests.
func WithTimeFunc(now func() time.Time) TokenOption {
	return func(t *tokenServiceImpl) {
		t.now = now
	}
}

func NewTokenService(secret []byte, ttl time.Duration, opts ...TokenOption) TokenService {
	t := &tokenServiceImpl{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		logger: log.NewLogger(log.Loglevel, "token-service"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *tokenServiceImpl) Generate(username string) (string, time.Time, error) {
	if username == "" {
		return "", time.Time{}, frerrors.ErrMissingIdentity
	}

	expiresAt := t.now().Add(t.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(t.now()),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (t *tokenServiceImpl) ParseHeader(raw string) (string, error) {
	if raw == "" {
		return "", frerrors.ErrTokenMissing
	}

	// expected form is "Bearer <token>"; take the second field
	fields := strings.Split(raw, " ")
	if len(fields) < 2 || fields[1] == "" {
		return "", frerrors.ErrMalformedToken
	}

	return t.Parse(fields[1])
}

func (t *tokenServiceImpl) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// reject anything but HMAC to rule out algorithm downgrade
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", frerrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", frerrors.ErrMalformedToken
		default:
			return "", frerrors.ErrInvalidToken
		}
	}

	if !token.Valid || claims.Username == "" {
		return "", frerrors.ErrInvalidToken
	}

	return claims.Username, nil
}
