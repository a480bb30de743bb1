package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name          string
		totalCount    int
		pageSize      int
		requestedPage int
		want          Window
	}{
		{
			name:          "empty table still has one page",
			totalCount:    0,
			pageSize:      8,
			requestedPage: 1,
			want:          Window{Page: 1, TotalPages: 1, Offset: 0, Limit: 8},
		},
		{
			name:          "exact multiple of page size",
			totalCount:    16,
			pageSize:      8,
			requestedPage: 2,
			want:          Window{Page: 2, TotalPages: 2, Offset: 8, Limit: 8},
		},
		{
			name:          "partial last page rounds up",
			totalCount:    17,
			pageSize:      8,
			requestedPage: 3,
			want:          Window{Page: 3, TotalPages: 3, Offset: 16, Limit: 8},
		},
		{
			name:          "page past the end clamps to last page",
			totalCount:    17,
			pageSize:      8,
			requestedPage: 99,
			want:          Window{Page: 3, TotalPages: 3, Offset: 16, Limit: 8},
		},
		{
			name:          "page below one clamps to first page",
			totalCount:    17,
			pageSize:      8,
			requestedPage: 0,
			want:          Window{Page: 1, TotalPages: 3, Offset: 0, Limit: 8},
		},
		{
			name:          "single record",
			totalCount:    1,
			pageSize:      8,
			requestedPage: 1,
			want:          Window{Page: 1, TotalPages: 1, Offset: 0, Limit: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWindow(tt.totalCount, tt.pageSize, tt.requestedPage)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ComputeWindow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeWindowInvariants(t *testing.T) {
	for totalCount := 0; totalCount <= 50; totalCount++ {
		for pageSize := 1; pageSize <= 10; pageSize++ {
			for requestedPage := -2; requestedPage <= 12; requestedPage++ {
				w := ComputeWindow(totalCount, pageSize, requestedPage)

				if w.TotalPages < 1 {
					t.Fatalf("ComputeWindow(%d, %d, %d): TotalPages = %d, want >= 1",
						totalCount, pageSize, requestedPage, w.TotalPages)
				}
				if w.Page < 1 || w.Page > w.TotalPages {
					t.Fatalf("ComputeWindow(%d, %d, %d): Page = %d, want within [1, %d]",
						totalCount, pageSize, requestedPage, w.Page, w.TotalPages)
				}
				if w.Offset != (w.Page-1)*pageSize {
					t.Fatalf("ComputeWindow(%d, %d, %d): Offset = %d, want %d",
						totalCount, pageSize, requestedPage, w.Offset, (w.Page-1)*pageSize)
				}
			}
		}
	}
}

func TestPaginationButtons(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        []PageButton
	}{
		{
			name:        "single page has a lone page button",
			currentPage: 1,
			totalPages:  1,
			want: []PageButton{
				{Kind: PageButtonPage, Value: 1},
			},
		},
		{
			name:        "middle of a long range gets both ellipses",
			currentPage: 5,
			totalPages:  10,
			want: []PageButton{
				{Kind: PageButtonPrev, Value: 4},
				{Kind: PageButtonPage, Value: 1},
				{Kind: PageButtonEllipsis},
				{Kind: PageButtonPage, Value: 3},
				{Kind: PageButtonPage, Value: 4},
				{Kind: PageButtonPage, Value: 5},
				{Kind: PageButtonPage, Value: 6},
				{Kind: PageButtonPage, Value: 7},
				{Kind: PageButtonEllipsis},
				{Kind: PageButtonPage, Value: 10},
				{Kind: PageButtonNext, Value: 6},
			},
		},
		{
			name:        "first page has no prev and no leading ellipsis",
			currentPage: 1,
			totalPages:  10,
			want: []PageButton{
				{Kind: PageButtonPage, Value: 1},
				{Kind: PageButtonPage, Value: 2},
				{Kind: PageButtonPage, Value: 3},
				{Kind: PageButtonPage, Value: 4},
				{Kind: PageButtonPage, Value: 5},
				{Kind: PageButtonEllipsis},
				{Kind: PageButtonPage, Value: 10},
				{Kind: PageButtonNext, Value: 2},
			},
		},
		{
			name:        "last page re-anchors the window to the tail",
			currentPage: 10,
			totalPages:  10,
			want: []PageButton{
				{Kind: PageButtonPrev, Value: 9},
				{Kind: PageButtonPage, Value: 1},
				{Kind: PageButtonEllipsis},
				{Kind: PageButtonPage, Value: 6},
				{Kind: PageButtonPage, Value: 7},
				{Kind: PageButtonPage, Value: 8},
				{Kind: PageButtonPage, Value: 9},
				{Kind: PageButtonPage, Value: 10},
			},
		},
		{
			name:        "second to last window skips redundant trailing ellipsis",
			currentPage: 6,
			totalPages:  8,
			want: []PageButton{
				{Kind: PageButtonPrev, Value: 5},
				{Kind: PageButtonPage, Value: 1},
				{Kind: PageButtonEllipsis},
				{Kind: PageButtonPage, Value: 4},
				{Kind: PageButtonPage, Value: 5},
				{Kind: PageButtonPage, Value: 6},
				{Kind: PageButtonPage, Value: 7},
				{Kind: PageButtonPage, Value: 8},
				{Kind: PageButtonNext, Value: 7},
			},
		},
		{
			name:        "short range lists every page",
			currentPage: 2,
			totalPages:  3,
			want: []PageButton{
				{Kind: PageButtonPrev, Value: 1},
				{Kind: PageButtonPage, Value: 1},
				{Kind: PageButtonPage, Value: 2},
				{Kind: PageButtonPage, Value: 3},
				{Kind: PageButtonNext, Value: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaginationButtons(tt.currentPage, tt.totalPages, 5)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PaginationButtons(%d, %d, 5) mismatch (-want +got):\n%s",
					tt.currentPage, tt.totalPages, diff)
			}
		})
	}
}
