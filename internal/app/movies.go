package app

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/filmbox/movie-catalog/api"
	"github.com/filmbox/movie-catalog/internal/domain"
	"github.com/google/uuid"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 8

	// PosterURLExpiry bounds how long a signed poster URL stays valid.
	// Clients must treat these URLs as ephemeral and never persist them.
	PosterURLExpiry = 7 * 24 * time.Hour
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	page := app.readInt(r, "page", DefaultPage)
	limit := app.readInt(r, "limit", DefaultPageSize)
	if limit < 1 {
		limit = DefaultPageSize
	}

	totalCount, err := app.movieRepo.Count(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	window := domain.ComputeWindow(totalCount, limit, page)

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), window)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiMovies := make([]api.Movie, len(movies))
	for i, movie := range movies {
		apiMovies[i] = app.toApiMovie(r, movie)
	}

	resp := api.MovieListResponse{
		Movies:      apiMovies,
		CurrentPage: window.Page,
		TotalPages:  window.TotalPages,
		TotalMovies: metadata.TotalRecords,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := app.toApiMovie(r, movie)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	form, err := app.parseMovieForm(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := domain.Movie{
		Title:          form.Title,
		PublishingYear: form.PublishingYear,
	}

	if form.Poster != nil {
		key, err := app.uploadPoster(r, form.Poster)
		if err != nil {
			app.storageFaultResponse(w, r, err)
			return
		}
		movie.PosterKey = &key
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		// The poster upload and the row insert are separate round trips with
		// no transaction spanning them; a failed insert strands the object.
		if movie.HasPoster() {
			app.logger.Error("orphaned poster object after failed insert", "key", *movie.PosterKey)
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := app.toApiMovie(r, &movie)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	form, err := app.parseMovieForm(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(form)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie.Title = form.Title
	movie.PublishingYear = form.PublishingYear

	// Without a new poster the existing key is preserved untouched.
	if form.Poster != nil {
		key, err := app.uploadPoster(r, form.Poster)
		if err != nil {
			app.storageFaultResponse(w, r, err)
			return
		}
		movie.PosterKey = &key
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			if form.Poster != nil && movie.HasPoster() {
				app.logger.Error("orphaned poster object after failed update", "key", *movie.PosterKey)
			}
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := app.toApiMovie(r, movie)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// Best effort: a missing or unreachable object must not block deleting
	// the row. The failure is still logged so orphans stay visible.
	if movie.HasPoster() {
		err = app.posterStorage.Remove(r.Context(), *movie.PosterKey)
		if err != nil {
			app.logger.Error("failed to remove poster object", "error", err, "key", *movie.PosterKey)
		}
	}

	err = app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.DeleteMovieResponse{Success: true}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// uploadPoster stores the submitted file under a fresh collision-resistant
// key and returns that key. The row only ever stores the key; URLs are minted
// per response.
func (app *Application) uploadPoster(r *http.Request, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open poster upload: %w", err)
	}
	defer file.Close()

	key := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	err = app.posterStorage.Upload(r.Context(), key, file, fileHeader.Size, contentType)
	if err != nil {
		return "", err
	}

	return key, nil
}

// toApiMovie converts a record to its wire shape, resolving the stored
// poster key to a signed URL. A failed signing downgrades that one record to
// the public fallback URL instead of failing the whole response.
func (app *Application) toApiMovie(r *http.Request, movie *domain.Movie) api.Movie {
	resp := api.Movie{
		Id:             movie.ID,
		Title:          movie.Title,
		PublishingYear: movie.PublishingYear,
		CreatedAt:      movie.CreatedAt,
	}

	if !movie.HasPoster() {
		return resp
	}

	url, err := app.posterStorage.SignedURL(r.Context(), *movie.PosterKey, PosterURLExpiry)
	if err != nil {
		app.logger.Warn("falling back to public poster url", "error", err, "movieId", movie.ID)
		url = app.posterStorage.PublicURL(*movie.PosterKey)
	}

	resp.PosterUrl = &url

	return resp
}
