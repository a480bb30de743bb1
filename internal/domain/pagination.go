package domain

// Window is the (offset, limit) slice of the movie table that corresponds to
// one page, after clamping the requested page into the valid range.
type Window struct {
	Page       int
	TotalPages int
	Offset     int
	Limit      int
}

// ComputeWindow derives the page window for a query. TotalPages is always at
// least 1 so that an empty table still renders as a single empty page, and
// the requested page is clamped into [1, TotalPages].
func ComputeWindow(totalCount, pageSize, requestedPage int) Window {
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Window{
		Page:       page,
		TotalPages: totalPages,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}
}

// Metadata describes the pagination state returned alongside a page of
// records.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	lastPage := (totalRecords + pageSize - 1) / pageSize
	if lastPage < 1 {
		lastPage = 1
	}

	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     lastPage,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}

type PageButtonKind string

const (
	PageButtonPage     = PageButtonKind("page")
	PageButtonEllipsis = PageButtonKind("ellipsis")
	PageButtonPrev     = PageButtonKind("prev")
	PageButtonNext     = PageButtonKind("next")
)

// PageButton is one element of a rendered pagination control. Value is the
// target page for page/prev/next buttons and zero for ellipses.
type PageButton struct {
	Kind  PageButtonKind
	Value int
}

// PaginationButtons builds the ordered button sequence for a pagination
// control: a window of up to maxButtons page numbers centered on the current
// page, re-anchored near the tail so the window never shrinks, with a leading
// first-page button and ellipsis when the window starts past the beginning,
// their mirror images at the end, and prev/next around the whole thing.
func PaginationButtons(currentPage, totalPages, maxButtons int) []PageButton {
	if maxButtons < 1 {
		maxButtons = 1
	}

	start := max(1, currentPage-2)
	end := min(totalPages, start+maxButtons-1)
	if totalPages-start < maxButtons-1 {
		start = max(1, totalPages-maxButtons+1)
	}

	var buttons []PageButton

	if currentPage > 1 {
		buttons = append(buttons, PageButton{Kind: PageButtonPrev, Value: currentPage - 1})
	}

	if start > 1 {
		buttons = append(buttons, PageButton{Kind: PageButtonPage, Value: 1})
		if start > 2 {
			buttons = append(buttons, PageButton{Kind: PageButtonEllipsis})
		}
	}

	for i := start; i <= end; i++ {
		buttons = append(buttons, PageButton{Kind: PageButtonPage, Value: i})
	}

	if end < totalPages {
		if end < totalPages-1 {
			buttons = append(buttons, PageButton{Kind: PageButtonEllipsis})
		}
		buttons = append(buttons, PageButton{Kind: PageButtonPage, Value: totalPages})
	}

	if currentPage < totalPages {
		buttons = append(buttons, PageButton{Kind: PageButtonNext, Value: currentPage + 1})
	}

	return buttons
}
