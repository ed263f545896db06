package pagination

// Page describes one fixed-size page of an in-memory result set.
type Page struct {
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
	// Start and End bound the slice of rows on this page: rows[Start:End].
	Start int `json:"-"`
	End   int `json:"-"`
}

// ClampPage computes page bounds for total rows. The requested page is clamped
// into [1, TotalPages]; an empty set yields page 1 of 0.
func ClampPage(total, requested, size int) Page {
	if size <= 0 {
		size = 1
	}
	if total < 0 {
		total = 0
	}
	totalPages := (total + size - 1) / size

	page := requested
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page{
		Number:     page,
		Size:       size,
		TotalCount: total,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}
