package dashboard

// AllowedPageSizes is the fixed set of page sizes the dashboard offers.
var AllowedPageSizes = []int{5, 10, 20}

// DefaultPageSize is used until the user picks another size.
const DefaultPageSize = 10

// Cursor tracks server-driven pagination state. Totals come from the
// backend response; the client never re-derives them from a fetched set.
type Cursor struct {
	Page          int // zero-based
	Size          int
	TotalPages    int
	TotalElements int
}

func NewCursor() *Cursor {
	return &Cursor{Size: DefaultPageSize}
}

// Apply records the totals reported by the server and clamps the page index
// into the valid range (the last page can disappear when events are deleted).
func (c *Cursor) Apply(totalPages, totalElements int) {
	c.TotalPages = totalPages
	c.TotalElements = totalElements
	if c.TotalPages > 0 && c.Page >= c.TotalPages {
		c.Page = c.TotalPages - 1
	}
}

// Next advances to the following page. Returns false at the last page.
func (c *Cursor) Next() bool {
	if c.TotalPages > 0 && c.Page >= c.TotalPages-1 {
		return false
	}
	c.Page++
	return true
}

// Prev steps back one page. Returns false at the first page.
func (c *Cursor) Prev() bool {
	if c.Page == 0 {
		return false
	}
	c.Page--
	return true
}

// SetSize switches the page size and resets to the first page. A size
// outside the allowed set is ignored and reported as false.
func (c *Cursor) SetSize(size int) bool {
	allowed := false
	for _, s := range AllowedPageSizes {
		if s == size {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}
	if size != c.Size {
		c.Size = size
		c.Page = 0
	}
	return true
}
