// Package client is a typed Go gateway to the movie catalog HTTP API. Every
// operation is a single round trip; writes go out as multipart form data so a
// poster file can ride along with the scalar fields.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/filmbox/movie-catalog/api"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// MovieInput carries the writable fields of a record. Poster is optional;
// when set, PosterName supplies the original filename whose extension ends up
// in the stored object key.
type MovieInput struct {
	Title          string
	PublishingYear int
	Poster         io.Reader
	PosterName     string
}

// New builds a client around its own cookie jar so the session established by
// Login sticks to subsequent calls.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sessions", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent && res.StatusCode != http.StatusOK {
		return decodeError(res)
	}

	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/sessions", nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		return decodeError(res)
	}

	return nil
}

func (c *Client) List(ctx context.Context, page, limit int) (*api.MovieListResponse, error) {
	url := fmt.Sprintf("%s/movies?page=%d&limit=%d", c.baseURL, page, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, decodeError(res)
	}

	var list api.MovieListResponse
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		return nil, err
	}

	return &list, nil
}

func (c *Client) Get(ctx context.Context, id int) (*api.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.movieURL(id), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, decodeError(res)
	}

	return decodeMovie(res.Body)
}

func (c *Client) Create(ctx context.Context, input MovieInput) (*api.Movie, error) {
	return c.submit(ctx, http.MethodPost, c.baseURL+"/movies", input, http.StatusCreated)
}

func (c *Client) Update(ctx context.Context, id int, input MovieInput) (*api.Movie, error) {
	return c.submit(ctx, http.MethodPatch, c.movieURL(id), input, http.StatusOK)
}

func (c *Client) Delete(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.movieURL(id), nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decodeError(res)
	}

	return nil
}

func (c *Client) submit(ctx context.Context, method, url string, input MovieInput, wantStatus int) (*api.Movie, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("title", input.Title); err != nil {
		return nil, err
	}
	if err := writer.WriteField("publishing_year", strconv.Itoa(input.PublishingYear)); err != nil {
		return nil, err
	}

	if input.Poster != nil {
		part, err := writer.CreateFormFile("poster", input.PosterName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, input.Poster); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != wantStatus {
		return nil, decodeError(res)
	}

	return decodeMovie(res.Body)
}

func (c *Client) movieURL(id int) string {
	return fmt.Sprintf("%s/movies/%d", c.baseURL, id)
}

func decodeMovie(r io.Reader) (*api.Movie, error) {
	var movie api.Movie
	if err := json.NewDecoder(r).Decode(&movie); err != nil {
		return nil, err
	}

	return &movie, nil
}

// decodeError maps a failure response onto the error taxonomy. Unknown
// statuses keep the server's message in a RemoteError.
func decodeError(res *http.Response) error {
	switch res.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadGateway:
		return ErrStorageFault
	case http.StatusUnprocessableEntity:
		var resp api.ValidationErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
			return &RemoteError{StatusCode: res.StatusCode, Message: "validation failed"}
		}

		fields := make(map[string]string, len(resp.ValidationErrors))
		for _, fieldErr := range resp.ValidationErrors {
			fields[fieldErr.Field] = fieldErr.Issue
		}

		return &ValidationError{Fields: fields}
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil || resp.Error == "" {
		return &RemoteError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
	}

	return &RemoteError{StatusCode: res.StatusCode, Message: resp.Error}
}
