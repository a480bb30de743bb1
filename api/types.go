// Package api defines the JSON shapes of the movie catalog HTTP surface.
// Field names are part of the wire contract consumed by existing clients and
// must not change.
package api

import "time"

// Movie is the wire representation of a catalog record. PosterUrl carries a
// signed, time-limited URL (or a raw fallback key when signing failed), never
// a permanent link; clients must not persist it beyond short-term display.
type Movie struct {
	Id             int       `json:"id"`
	Title          string    `json:"title"`
	PublishingYear int       `json:"publishing_year"`
	PosterUrl      *string   `json:"poster_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type MovieListResponse struct {
	Movies      []Movie `json:"movies"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	TotalMovies int     `json:"totalMovies"`
}

type DeleteMovieResponse struct {
	Success bool `json:"success"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Email     string    `json:"email"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int       `json:"version"`
}

type UserActivationRequest struct {
	Token string `json:"token" validate:"required,len=43"`
}

type UserActivationResponse struct {
	Activated bool `json:"activated"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error     string    `json:"error"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Error            string            `json:"error"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
