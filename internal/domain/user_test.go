package domain

import "testing"

func TestPassword(t *testing.T) {
	var p password

	if err := p.Set("Test123!@#"); err != nil {
		t.Fatal(err)
	}

	if len(p.Hash) == 0 {
		t.Fatal("no hash stored")
	}

	match, err := p.Matches("Test123!@#")
	if err != nil {
		t.Fatal(err)
	}
	if !match {
		t.Error("correct password did not match")
	}

	match, err = p.Matches("Wrong123!@#")
	if err != nil {
		t.Fatal(err)
	}
	if match {
		t.Error("wrong password matched")
	}
}

func TestMovieHasPoster(t *testing.T) {
	empty := ""
	key := "poster.jpg"

	tests := []struct {
		name  string
		movie Movie
		want  bool
	}{
		{name: "nil key", movie: Movie{}, want: false},
		{name: "empty key", movie: Movie{PosterKey: &empty}, want: false},
		{name: "set key", movie: Movie{PosterKey: &key}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.movie.HasPoster(); got != tt.want {
				t.Errorf("HasPoster() = %v, want %v", got, tt.want)
			}
		})
	}
}
