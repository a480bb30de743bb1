package domain

import (
	"context"
	"time"
)

// Movie is a single catalog record. PosterKey holds the raw object storage
// key, never a display URL; handlers resolve the key to a signed URL on the
// way out.
type Movie struct {
	ID             int
	Title          string
	PublishingYear int
	PosterKey      *string
	CreatedAt      time.Time
}

// HasPoster reports whether the record references a stored poster object.
func (m *Movie) HasPoster() bool {
	return m.PosterKey != nil && *m.PosterKey != ""
}

type MovieRepository interface {
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context, window Window) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
