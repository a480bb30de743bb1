package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/filmbox/movie-catalog/api"
	"github.com/filmbox/movie-catalog/internal/mailer"
	"github.com/filmbox/movie-catalog/internal/mocks"
	appvalidator "github.com/filmbox/movie-catalog/internal/validator"
)

// newTestApplication builds an Application wired to zero-value mocks, ready
// for handler tests. Individual tests override repo functions as needed.
func newTestApplication(t *testing.T) *Application {
	t.Helper()

	return &Application{
		config:         Config{Env: "test"},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator:      appvalidator.NewValidator(),
		sessionManager: scs.New(),
		mailer:         mailer.NewMockMailer(),
		userRepo:       &mocks.MockUserRepo{},
		tokenRepo:      &mocks.MockTokenRepo{},
		movieRepo:      &mocks.MockMovieRepo{},
		posterStorage:  &mocks.MockPosterStorage{},
	}
}

func (app *Application) executeRequest(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	app.Routes().ServeHTTP(rr, req)

	return rr
}

// authenticate mints a session holding the given user id and attaches its
// cookie to the request, so the request passes requireAuthentication.
func (app *Application) authenticate(t *testing.T, req *http.Request, userId int) {
	t.Helper()

	ctx, err := app.sessionManager.Load(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)

	token, _, err := app.sessionManager.Commit(ctx)
	if err != nil {
		t.Fatal(err)
	}

	req.AddCookie(&http.Cookie{Name: app.sessionManager.Cookie.Name, Value: token})
}

func checkResponseCode(t *testing.T, want, got int) {
	t.Helper()

	if want != got {
		t.Errorf("response code = %d, want %d", got, want)
	}
}

func checkErrorResponse(t *testing.T, body io.Reader, wantMessage string) {
	t.Helper()

	var resp api.ErrorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}

	if resp.Error != wantMessage {
		t.Errorf("error message = %q, want %q", resp.Error, wantMessage)
	}
}

// newMultipartBody builds a movie create/update request body. A non-empty
// posterName adds a small fake image part under that filename.
func newMultipartBody(t *testing.T, fields map[string]string, posterName string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}

	if posterName != "" {
		part, err := writer.CreateFormFile("poster", posterName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatal(err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	return body, writer.FormDataContentType()
}

func ptr[T any](v T) *T {
	return &v
}
