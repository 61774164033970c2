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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmrate/api/model"
	"filmrate/api/vo"
	"filmrate/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(&model.User{}, &model.Movie{}, &model.UserRating{}))
	return conn
}

func testConfig(expireMinutes int, admins ...config.AdminConfig) *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Listen:     ":0",
			Name:       "filmrate-test",
			InitAdmins: admins,
		},
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			ExpireMinutes: expireMinutes,
		},
	}
}

func newTestServer(t *testing.T, expireMinutes int, admins ...config.AdminConfig) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := NewServer(&ServerConfig{Cfg: testConfig(expireMinutes, admins...), DB: newTestDB(t)})
	require.NoError(t, s.SeedAdmins(context.Background()))
	return s
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func signupAndLogin(t *testing.T, s *Server, username, password string) string {
	t.Helper()

	w, _ := doJSON(t, s, http.MethodPost, "/auth/signup", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	return login(t, s, username, password)
}

func login(t *testing.T, s *Server, username, password string) string {
	t.Helper()

	w, env := doJSON(t, s, http.MethodPost, "/auth/login", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	var tok vo.TokenVo
	require.NoError(t, json.Unmarshal(env.Data, &tok))
	require.NotEmpty(t, tok.Token)
	return tok.Token
}

func TestSignupLoginAdminAction(t *testing.T) {
	s := newTestServer(t, 30, config.AdminConfig{Username: "bob", Password: "pw2"})

	// alice is a plain user; admin routes must reject her
	aliceToken := signupAndLogin(t, s, "alice", "pw1")
	w, env := doJSON(t, s, http.MethodPost, "/admin/add-movie", aliceToken, gin.H{"title": "Inception"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "unauthorized", env.Message)

	// bob was seeded as admin
	bobToken := login(t, s, "bob", "pw2")
	w, _ = doJSON(t, s, http.MethodPost, "/admin/add-movie", bobToken, gin.H{"title": "Inception"})
	require.Equal(t, http.StatusOK, w.Code)

	// the movie shows up in the public catalog
	w, env = doJSON(t, s, http.MethodGet, "/movies", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var movies []vo.MovieVo
	require.NoError(t, json.Unmarshal(env.Data, &movies))
	require.Len(t, movies, 1)
	require.Equal(t, "Inception", movies[0].Title)
}

func TestRatingLifecycle(t *testing.T) {
	s := newTestServer(t, 30, config.AdminConfig{Username: "root", Password: "rootpw"})

	adminToken := login(t, s, "root", "rootpw")
	w, env := doJSON(t, s, http.MethodPost, "/admin/add-movie", adminToken, gin.H{"title": "Heat"})
	require.Equal(t, http.StatusOK, w.Code)
	var movie model.Movie
	require.NoError(t, json.Unmarshal(env.Data, &movie))

	userToken := signupAndLogin(t, s, "carol", "pw")
	ratePath := fmt.Sprintf("/add-rating/%d", movie.ID)
	updatePath := fmt.Sprintf("/update-rating/%d", movie.ID)
	deletePath := fmt.Sprintf("/delete-rating/%d", movie.ID)

	w, _ = doJSON(t, s, http.MethodPost, ratePath, userToken, gin.H{"rating": 3})
	require.Equal(t, http.StatusOK, w.Code)

	// out of the 1..5 range
	w, env = doJSON(t, s, http.MethodPut, updatePath, userToken, gin.H{"rating": 6})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "rating must be between 1 and 5", env.Message)

	w, _ = doJSON(t, s, http.MethodPut, updatePath, userToken, gin.H{"rating": 5})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, s, http.MethodDelete, deletePath, userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, s, http.MethodDelete, deletePath, userToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "rating not found", env.Message)
}

func TestAdminModeratesAnyRating(t *testing.T) {
	s := newTestServer(t, 30, config.AdminConfig{Username: "root", Password: "rootpw"})

	adminToken := login(t, s, "root", "rootpw")
	w, env := doJSON(t, s, http.MethodPost, "/admin/add-movie", adminToken, gin.H{"title": "Alien"})
	require.Equal(t, http.StatusOK, w.Code)
	var movie model.Movie
	require.NoError(t, json.Unmarshal(env.Data, &movie))

	userToken := signupAndLogin(t, s, "dave", "pw")
	w, env = doJSON(t, s, http.MethodPost, fmt.Sprintf("/add-rating/%d", movie.ID), userToken, gin.H{"rating": 2})
	require.Equal(t, http.StatusOK, w.Code)
	var rating model.UserRating
	require.NoError(t, json.Unmarshal(env.Data, &rating))

	// admins cannot submit ratings themselves
	w, _ = doJSON(t, s, http.MethodPost, fmt.Sprintf("/add-rating/%d", movie.ID), adminToken, gin.H{"rating": 5})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// but they can remove anyone's, by rating id
	w, _ = doJSON(t, s, http.MethodDelete, fmt.Sprintf("/admin/delete-rating/%d", rating.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, s, http.MethodDelete, fmt.Sprintf("/admin/delete-rating/%d", rating.ID), adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExpiredTokenReuse(t *testing.T) {
	// negative TTL: every issued token is already 31 minutes stale
	s := newTestServer(t, -31, config.AdminConfig{Username: "root", Password: "rootpw"})

	staleToken := signupAndLogin(t, s, "erin", "pw")

	w, env := doJSON(t, s, http.MethodPost, "/add-rating/1", staleToken, gin.H{"rating": 3})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "token has expired", env.Message)
}

func TestGetMovieDetails(t *testing.T) {
	s := newTestServer(t, 30, config.AdminConfig{Username: "root", Password: "rootpw"})

	adminToken := login(t, s, "root", "rootpw")
	w, env := doJSON(t, s, http.MethodPost, "/admin/add-movie", adminToken, gin.H{"title": "Solaris"})
	require.Equal(t, http.StatusOK, w.Code)
	var movie model.Movie
	require.NoError(t, json.Unmarshal(env.Data, &movie))

	userToken := signupAndLogin(t, s, "frank", "pw")
	w, _ = doJSON(t, s, http.MethodPost, fmt.Sprintf("/add-rating/%d", movie.ID), userToken, gin.H{"rating": 4})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, s, http.MethodGet, fmt.Sprintf("/movies/%d", movie.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got vo.MovieVo
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Equal(t, "Solaris", got.Title)
	require.Len(t, got.Ratings, 1)

	w, _ = doJSON(t, s, http.MethodGet, "/movies/9999", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignupValidation(t *testing.T) {
	s := newTestServer(t, 30)

	// missing fields fail binding
	w, _ := doJSON(t, s, http.MethodPost, "/auth/signup", "", gin.H{"username": "grace"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate username
	signupAndLogin(t, s, "grace", "pw")
	w, env := doJSON(t, s, http.MethodPost, "/auth/signup", "", gin.H{"username": "grace", "password": "pw"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "username already taken", env.Message)
}
