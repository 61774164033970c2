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
	"filmrate/api/dto"
	"filmrate/api/vo"

	"github.com/gin-gonic/gin"
)

func (s *Server) signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.UserDto
		if err := c.ShouldBindJSON(&d); err != nil {
			WriteBadRequest(c, "invalid request: "+err.Error())
			return
		}

		user, err := s.userController.Register(c.Request.Context(), &d)
		if err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, &vo.UserVo{
			ID:         user.ID,
			ExternalID: user.ExternalID,
			Username:   user.Username,
			Role:       user.Role.String(),
		})
	}
}

func (s *Server) login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.UserDto
		if err := c.ShouldBindJSON(&d); err != nil {
			WriteBadRequest(c, "invalid request: "+err.Error())
			return
		}

		token, err := s.userController.Login(c.Request.Context(), &d)
		if err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, token)
	}
}
