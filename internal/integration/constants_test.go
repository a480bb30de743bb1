package integration_test

const (
	// User related constants
	TestUserId       = 1
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	// Movie related constants
	TestMovieTitle     = "Test Movie"
	TestMovieYear      = 2021
	TestMoviePosterKey = "test-poster.jpg"
)
