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
	"strings"
	"testing"
	"time"

	"filmrate/pkg/frerrors"

	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	tokener := NewTokenService([]byte("super-secret"), 30*time.Minute)

	token, expiresAt, err := tokener.Generate("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	username, err := tokener.ParseHeader("Bearer " + token)
	require.NoError(t, err)
	require.Equal(t, "alice", username)
}

func TestTokenService_EmptyUsername(t *testing.T) {
	t.Parallel()

	tokener := NewTokenService([]byte("super-secret"), 30*time.Minute)
	_, _, err := tokener.Generate("")
	require.ErrorIs(t, err, frerrors.ErrMissingIdentity)
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt

	tokener := NewTokenService([]byte("super-secret"), 30*time.Minute,
		WithTimeFunc(func() time.Time { return now }))

	token, _, err := tokener.Generate("alice")
	require.NoError(t, err)

	// one second before expiry
	now = issuedAt.Add(30*time.Minute - time.Second)
	username, err := tokener.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "alice", username)

	// one second past expiry
	now = issuedAt.Add(30*time.Minute + time.Second)
	_, err = tokener.Parse(token)
	require.ErrorIs(t, err, frerrors.ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("secret-one"), 30*time.Minute)
	verifier := NewTokenService([]byte("secret-two"), 30*time.Minute)

	token, _, err := issuer.Generate("alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.ErrorIs(t, err, frerrors.ErrInvalidToken)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	t.Parallel()

	tokener := NewTokenService([]byte("super-secret"), 30*time.Minute)
	token, _, err := tokener.Generate("alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// replace one signature character with a different base64url character
	sig := []byte(parts[2])
	for i := range sig {
		replacement := byte('A')
		if sig[i] == 'A' {
			replacement = 'B'
		}
		mutated := append([]byte{}, sig...)
		mutated[i] = replacement
		forged := parts[0] + "." + parts[1] + "." + string(mutated)

		_, err = tokener.Parse(forged)
		require.ErrorIs(t, err, frerrors.ErrInvalidToken, "mutated signature byte %d must not verify", i)
	}
}

func TestTokenService_ParseHeader(t *testing.T) {
	t.Parallel()

	tokener := NewTokenService([]byte("super-secret"), 30*time.Minute)
	token, _, err := tokener.Generate("alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"empty header", "", frerrors.ErrTokenMissing},
		{"no space", "garbage", frerrors.ErrMalformedToken},
		{"scheme only", "Bearer ", frerrors.ErrMalformedToken},
		{"garbled token", "Bearer not.a.jwt", frerrors.ErrMalformedToken},
		{"standard form", "Bearer " + token, nil},
		{"scheme word ignored", "Token " + token, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := tokener.ParseHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "alice", username)
		})
	}
}
