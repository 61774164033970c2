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
	"errors"
	"net/http"

	"filmrate/pkg/frerrors"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func NewResponse(code int, message string, data any) *Response {
	return &Response{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// StatusOf maps a domain error to its HTTP status. This is the single
// place the taxonomy is translated; handlers never pick status codes
// themselves.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, frerrors.ErrTokenMissing),
		errors.Is(err, frerrors.ErrMalformedToken),
		errors.Is(err, frerrors.ErrMissingIdentity),
		errors.Is(err, frerrors.ErrPasswordRequired),
		errors.Is(err, frerrors.ErrRatingRange):
		return http.StatusBadRequest
	case errors.Is(err, frerrors.ErrInvalidToken),
		errors.Is(err, frerrors.ErrTokenExpired),
		errors.Is(err, frerrors.ErrUnauthorized),
		errors.Is(err, frerrors.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, frerrors.ErrIdentityNotFound),
		errors.Is(err, frerrors.ErrUserNotFound),
		errors.Is(err, frerrors.ErrMovieNotFound),
		errors.Is(err, frerrors.ErrRatingNotFound):
		return http.StatusNotFound
	case errors.Is(err, frerrors.ErrUserExists),
		errors.Is(err, frerrors.ErrRatingExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func WriteOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewResponse(http.StatusOK, "success", data))
}

func WriteBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, NewResponse(http.StatusBadRequest, msg, nil))
}

// WriteError renders a domain error with its mapped status. Unknown
// errors become a bare 500 so internals never leak to clients.
func WriteError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(status, NewResponse(status, msg, nil))
}

// AbortError is WriteError for middleware, stopping the handler chain.
func AbortError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, NewResponse(status, msg, nil))
}
