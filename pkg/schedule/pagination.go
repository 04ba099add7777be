package schedule

const (
	NotesPageSize = 6
	TodoPageSize  = 8
)

// Page describes one slice of a paginated list. Number is 1-based.
type Page struct {
	Number int
	Total  int
	Start  int
	End    int
}

// Paginate splits n items into pages of pageSize and clamps page into
// [1, Total]. An empty list still has one page.
func Paginate(n, pageSize, page int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	total := (n + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return Page{Number: page, Total: total, Start: start, End: end}
}

// PageOf returns the items on the requested page.
func PageOf[T any](items []T, pageSize, page int) ([]T, Page) {
	p := Paginate(len(items), pageSize, page)
	return items[p.Start:p.End], p
}
