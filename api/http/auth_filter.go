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

package http

import (
	"filmrate/api/metrics"
	"filmrate/api/model"
	"filmrate/pkg/frerrors"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"

// authFilter is the authorization gate guarding every privileged route:
//
//  1. verify the bearer token and extract the asserted username
//  2. re-fetch the identity record; the token being valid does not mean
//     the account still exists
//  3. when roles are given, require the account's role to be one of them
//
// The order is load-bearing; every privileged handler goes through this
// one middleware rather than repeating the steps.
func (s *Server) authFilter(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := s.tokener.ParseHeader(c.GetHeader("Authorization"))
		if err != nil {
			metrics.AuthFailures.WithLabelValues(err.Error()).Inc()
			AbortError(c, err)
			return
		}

		user, err := s.userController.GetByUsername(c.Request.Context(), username)
		if err != nil {
			metrics.AuthFailures.WithLabelValues(err.Error()).Inc()
			AbortError(c, err)
			return
		}

		if len(roles) > 0 && !roleAllowed(user.Role, roles) {
			metrics.AuthFailures.WithLabelValues(frerrors.ErrUnauthorized.Error()).Inc()
			AbortError(c, frerrors.ErrUnauthorized)
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

func roleAllowed(role model.Role, allowed []model.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// currentUser returns the identity the auth filter stored. Only valid
// on routes behind authFilter.
func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
