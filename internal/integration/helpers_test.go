package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/filmbox/movie-catalog/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		switch k {
		case "timestamp", "requestId", "createdAt", "created_at":
			return true
		}
		return false
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func truncateMovies(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE movies RESTART IDENTITY")
	require.NoError(t, err)
}

func truncateUsersAndTokens(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func defaultTestUser() *domain.User {
	user := &domain.User{Email: TestUserEmail}
	if err := user.Password.Set(TestUserPassword); err != nil {
		panic(err)
	}

	return user
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, user *domain.User) {
	query := `INSERT INTO users (email, password_hash, activated)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := db.QueryRow(context.Background(), query, user.Email, user.Password.Hash, user.Activated).Scan(&user.ID)
	require.NoError(t, err)
}

func insertTestToken(t testing.TB, db *pgxpool.Pool, token *domain.Token) {
	query := `INSERT INTO tokens (hash, user_id, expiry, scope)
		VALUES ($1, $2, $3, $4)`

	_, err := db.Exec(context.Background(), query, token.Hash, token.UserId, token.Expiry, token.Scope)
	require.NoError(t, err)
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, title string, year int, posterKey *string, createdAt time.Time) int {
	query := `INSERT INTO movies (title, publishing_year, poster_key, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := db.QueryRow(context.Background(), query, title, year, posterKey, createdAt).Scan(&id)
	require.NoError(t, err)

	return id
}

func countMovies(t testing.TB, db *pgxpool.Pool) int {
	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM movies").Scan(&count)
	require.NoError(t, err)

	return count
}

// authenticatedUserCookies seeds an activated test user and logs it in,
// returning the session cookies for protected scenarios.
func (a *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	truncateUsersAndTokens(t, a.DB)

	user := defaultTestUser()
	user.Activated = true
	insertTestUser(t, a.DB, user)

	body := strings.NewReader(fmt.Sprintf(`{"email": %q, "password": %q}`, TestUserEmail, TestUserPassword))

	req := httptest.NewRequest(http.MethodPost, "/sessions", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code, "login for test session failed")

	return rec.Result().Cookies()
}

// newMovieFormBody builds a multipart create/update body. posterName, when
// non-empty, attaches a small fake image part.
func newMovieFormBody(t testing.TB, fields map[string]string, posterName string) (io.Reader, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if posterName != "" {
		part, err := writer.CreateFormFile("poster", posterName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
