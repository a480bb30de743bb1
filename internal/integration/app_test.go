package integration_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/filmbox/movie-catalog/internal/app"
	"github.com/filmbox/movie-catalog/internal/mailer"
	"github.com/filmbox/movie-catalog/internal/mocks"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App     *app.Application
	DB      *pgxpool.Pool
	Mailer  *mailer.MockMailer
	Storage *mocks.MockPosterStorage
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	mockMailer := mailer.NewMockMailer()
	mockStorage := &mocks.MockPosterStorage{}

	application, err := app.New(cfg, logger,
		app.WithMailer(mockMailer),
		app.WithPosterStorage(mockStorage),
	)
	if err != nil {
		return nil, err
	}

	// Separate pool for seeding and assertions, so test fixtures never share
	// connections with the application under test.
	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		application.Close()
		return nil, err
	}

	return &TestApp{
		App:     application,
		DB:      db,
		Mailer:  mockMailer,
		Storage: mockStorage,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.App.Close()
}
