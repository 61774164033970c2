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

	"github.com/gin-gonic/gin"
)

// addRating rates movie :id as the authenticated user.
func (s *Server) addRating() gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := paramUint(c, "id")
		if !ok {
			WriteBadRequest(c, "invalid movie id")
			return
		}

		var d dto.RatingDto
		if err := c.ShouldBindJSON(&d); err != nil {
			WriteBadRequest(c, "invalid request: "+err.Error())
			return
		}

		user := currentUser(c)
		rating, err := s.ratingController.Add(c.Request.Context(), user.ID, movieID, d.Rating)
		if err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, rating)
	}
}

// updateRating replaces the authenticated user's rating of movie :id.
func (s *Server) updateRating() gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := paramUint(c, "id")
		if !ok {
			WriteBadRequest(c, "invalid movie id")
			return
		}

		var d dto.RatingDto
		if err := c.ShouldBindJSON(&d); err != nil {
			WriteBadRequest(c, "invalid request: "+err.Error())
			return
		}

		user := currentUser(c)
		rating, err := s.ratingController.Update(c.Request.Context(), user.ID, movieID, d.Rating)
		if err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, rating)
	}
}

// deleteOwnRating removes the authenticated user's rating of movie :id.
func (s *Server) deleteOwnRating() gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, ok := paramUint(c, "id")
		if !ok {
			WriteBadRequest(c, "invalid movie id")
			return
		}

		user := currentUser(c)
		if err := s.ratingController.DeleteOwn(c.Request.Context(), user.ID, movieID); err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, "rating deleted")
	}
}

// deleteAnyRating removes any rating by rating id; admin moderation.
func (s *Server) deleteAnyRating() gin.HandlerFunc {
	return func(c *gin.Context) {
		ratingID, ok := paramUint(c, "id")
		if !ok {
			WriteBadRequest(c, "invalid rating id")
			return
		}

		if err := s.ratingController.DeleteByID(c.Request.Context(), ratingID); err != nil {
			WriteError(c, err)
			return
		}

		WriteOK(c, "rating deleted")
	}
}
