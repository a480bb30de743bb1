package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxPosterBytes = 5 << 20

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1 << 20
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func (app *Application) readIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}

	return id, nil
}

// readInt reads a query string value as an integer, falling back to the
// default when the key is absent or malformed. Mirrors the lenient
// `parseInt(...) || default` parsing existing clients rely on.
func (app *Application) readInt(r *http.Request, key string, defaultValue int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultValue
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return i
}

// movieForm carries the parsed multipart fields of a create/update request.
// PublishingYear is forced to an invalid sentinel when the submitted value is
// not numeric, so validation reports it instead of a storage-layer type
// error.
type movieForm struct {
	Title          string `validate:"required,max=100"`
	PublishingYear int    `validate:"required,publishing_year"`
	Poster         *multipart.FileHeader
}

func (app *Application) parseMovieForm(w http.ResponseWriter, r *http.Request) (*movieForm, error) {
	// ParseMultipartForm's argument only bounds in-memory buffering; the
	// reader is what actually caps the request size.
	r.Body = http.MaxBytesReader(w, r.Body, maxPosterBytes)

	err := r.ParseMultipartForm(maxPosterBytes)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return nil, fmt.Errorf("request must not be larger than %d bytes", maxBytesError.Limit)
		}

		return nil, errors.New("request must be valid multipart form data")
	}

	form := &movieForm{
		Title: r.FormValue("title"),
	}

	if yearValue := r.FormValue("publishing_year"); yearValue != "" {
		year, err := strconv.Atoi(yearValue)
		if err != nil {
			year = -1
		}
		form.PublishingYear = year
	}

	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["poster"]; len(files) > 0 {
			form.Poster = files[0]
		}
	}

	return form, nil
}
