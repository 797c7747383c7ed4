package store

// Default and maximum page sizes for list queries. The default can be
// overridden per deployment through server.pageSize.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a page-number based pagination request.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page to sane bounds, using defaultSize when no
// size was requested. A defaultSize of 0 falls back to DefaultPageSize.
func (p Page) Normalize(defaultSize int) Page {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// LimitOffset converts the page into SQL LIMIT and OFFSET values.
func (p Page) LimitOffset() (limit, offset int) {
	return p.Size, (p.Number - 1) * p.Size
}
