package parallel

// Band is an inclusive range of rows rendered by one work item.
type Band struct {
	Top, Bottom int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Bottom - b.Top + 1
}

// SplitRows divides the rows [top, bottom] into at most n contiguous
// bands of near-equal height, in order. It returns nil when the range is
// empty.
func SplitRows(top, bottom, n int) []Band {
	rows := bottom - top + 1
	if rows <= 0 {
		return nil
	}
	n = max(1, min(n, rows))

	bands := make([]Band, 0, n)
	base, extra := rows/n, rows%n
	y := top
	for i := range n {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Top: y, Bottom: y + h - 1})
		y += h
	}
	return bands
}
