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

package frerrors

import "errors"

var (
	// token errors, produced by the token service
	ErrTokenMissing   = errors.New("token is missing")
	ErrMalformedToken = errors.New("invalid token format")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")

	// issuance errors
	ErrMissingIdentity = errors.New("username is required")

	// gate errors, produced by the auth filter
	ErrIdentityNotFound = errors.New("identity not found")
	ErrUnauthorized     = errors.New("unauthorized")

	ErrPasswordRequired = errors.New("password required")
	ErrInvalidPassword  = errors.New("invalid username or password")

	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("username already taken")
	ErrMovieNotFound  = errors.New("movie not found")
	ErrRatingNotFound = errors.New("rating not found")
	ErrRatingExists   = errors.New("movie already rated, update it instead")
	ErrRatingRange    = errors.New("rating must be between 1 and 5")
)
