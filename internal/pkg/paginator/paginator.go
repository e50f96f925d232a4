package paginator

import "strconv"

// PerPage is the number of posts on every listing page.
const PerPage = 10

// Page describes one slice of a paginated listing.
type Page struct {
	Number     int
	PerPage    int
	TotalItems int
	TotalPages int
	Offset     int
	Limit      int
	HasPrev    bool
	HasNext    bool
	PrevNumber int
	NextNumber int
}

// Paginator computes fixed-size pages over a known total. It carries no data
// itself; the offset/limit of the resulting Page feed the actual query.
type Paginator struct {
	totalItems int
	perPage    int
}

func New(totalItems, perPage int) Paginator {
	if totalItems < 0 {
		totalItems = 0
	}
	if perPage < 1 {
		perPage = PerPage
	}
	return Paginator{totalItems: totalItems, perPage: perPage}
}

// TotalPages is at least 1: an empty listing still has one (empty) page.
func (p Paginator) TotalPages() int {
	if p.totalItems == 0 {
		return 1
	}
	return (p.totalItems + p.perPage - 1) / p.perPage
}

// Page returns the requested page, clamped to the valid range. A number past
// the end, zero, or negative yields the last valid page rather than an error.
func (p Paginator) Page(requested int) Page {
	pages := p.TotalPages()
	if requested < 1 || requested > pages {
		requested = pages
	}

	return Page{
		Number:     requested,
		PerPage:    p.perPage,
		TotalItems: p.totalItems,
		TotalPages: pages,
		Offset:     (requested - 1) * p.perPage,
		Limit:      p.perPage,
		HasPrev:    requested > 1,
		HasNext:    requested < pages,
		PrevNumber: requested - 1,
		NextNumber: requested + 1,
	}
}

// ParseNumber turns a raw page query parameter into a page number. A missing
// or non-numeric value means the first page.
func ParseNumber(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
