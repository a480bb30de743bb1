// Package state holds client-side catalog state: a synchronized view of the
// paginated movie list and the routing decision for session-gated screens.
package state

import (
	"context"
	"sync"

	"github.com/filmbox/movie-catalog/api"
	"github.com/filmbox/movie-catalog/internal/client"
	"github.com/filmbox/movie-catalog/internal/domain"
)

// Status tracks where the list stands relative to the server.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Gateway is the slice of the catalog API the list store needs.
type Gateway interface {
	List(ctx context.Context, page, limit int) (*api.MovieListResponse, error)
	Create(ctx context.Context, input client.MovieInput) (*api.Movie, error)
	Update(ctx context.Context, id int, input client.MovieInput) (*api.Movie, error)
	Delete(ctx context.Context, id int) error
}

// Snapshot is a point-in-time copy of the list state, safe to read without
// holding any lock.
type Snapshot struct {
	Status      Status
	Movies      []api.Movie
	CurrentPage int
	TotalPages  int
	TotalMovies int
	Err         error
}

// maxPageButtons is how many numbered page buttons a pagination control
// shows at once.
const maxPageButtons = 5

// Buttons renders the pagination control for this snapshot.
func (s Snapshot) Buttons() []domain.PageButton {
	return domain.PaginationButtons(s.CurrentPage, s.TotalPages, maxPageButtons)
}

// ListStore caches one page of the catalog and keeps it consistent across
// concurrent fetches and writes. Each fetch takes a sequence token; a response
// carrying a stale token is discarded, so overlapping page loads can resolve
// in any order and the view always reflects the latest request.
type ListStore struct {
	gateway  Gateway
	pageSize int

	mu          sync.Mutex
	seq         uint64
	status      Status
	movies      []api.Movie
	currentPage int
	totalPages  int
	totalMovies int
	err         error
}

func NewListStore(gateway Gateway, pageSize int) *ListStore {
	return &ListStore{
		gateway:     gateway,
		pageSize:    pageSize,
		status:      StatusIdle,
		currentPage: 1,
		totalPages:  1,
	}
}

func (s *ListStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := make([]api.Movie, len(s.movies))
	copy(movies, s.movies)

	return Snapshot{
		Status:      s.status,
		Movies:      movies,
		CurrentPage: s.currentPage,
		TotalPages:  s.totalPages,
		TotalMovies: s.totalMovies,
		Err:         s.err,
	}
}

// FetchPage loads the given page from the gateway and installs it, unless a
// newer fetch started while this one was in flight.
func (s *ListStore) FetchPage(ctx context.Context, page int) error {
	s.mu.Lock()
	s.seq++
	token := s.seq
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()

	list, err := s.gateway.List(ctx, page, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		// A newer fetch superseded this one; whatever it returned no longer
		// reflects what the caller asked for.
		return err
	}

	if err != nil {
		s.status = StatusFailed
		s.movies = nil
		s.err = err

		return err
	}

	s.status = StatusSucceeded
	s.movies = list.Movies
	s.currentPage = list.CurrentPage
	s.totalPages = list.TotalPages
	s.totalMovies = list.TotalMovies

	return nil
}

// Create submits a new record and, on success, prepends it to the cached page
// so it shows up immediately without a refetch. Page totals shift by one; the
// next fetch reconciles exact page boundaries.
func (s *ListStore) Create(ctx context.Context, input client.MovieInput) (*api.Movie, error) {
	movie, err := s.gateway.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.movies = append([]api.Movie{*movie}, s.movies...)
	s.totalMovies++

	return movie, nil
}

// Update submits changed fields and replaces the matching cached record in
// place. A record not on the cached page is left alone; its row will carry
// the update whenever that page is next fetched.
func (s *ListStore) Update(ctx context.Context, id int, input client.MovieInput) (*api.Movie, error) {
	movie, err := s.gateway.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movies {
		if s.movies[i].Id == id {
			s.movies[i] = *movie
			break
		}
	}

	return movie, nil
}

// Delete removes the record on the server and then refetches the current
// page. Splicing the record out locally would leave the page one short, so
// the server recomputes the page instead.
func (s *ListStore) Delete(ctx context.Context, id int) error {
	err := s.gateway.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	page := s.currentPage
	s.mu.Unlock()

	return s.FetchPage(ctx, page)
}

// Reset drops all cached state and invalidates in-flight fetches, e.g. on
// logout.
func (s *ListStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.status = StatusIdle
	s.movies = nil
	s.currentPage = 1
	s.totalPages = 1
	s.totalMovies = 0
	s.err = nil
}
