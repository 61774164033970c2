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
	"strconv"

	"filmrate/api/dto"

	"github.com/gin-gonic/gin"
)

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func (s *Server) addMovie() gin.HandlerFunc {
	return func(c *gin.Context) {
		var d dto.MovieDto
		if err := c.ShouldBindJSON(&d); err != nil {
			WriteBadRequest(c, "invalid request: "+err.Error())
			return
		}

		movie, err := s.movieController.Add(c.Request.Context(), &d)
		if err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, movie)
	}
}

func (s *Server) listMovies() gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := s.movieController.List(c.Request.Context())
		if err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, movies)
	}
}

func (s *Server) getMovie() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramUint(c, "id")
		if !ok {
			WriteBadRequest(c, "invalid movie id")
			return
		}

		movie, err := s.movieController.Get(c.Request.Context(), id)
		if err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, movie)
	}
}
