package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// PageBounds clamps offset and limit to a slice of length n.
func PageBounds(n, offset, limit int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end = offset + limit
	if limit < 0 || end > n {
		end = n
	}
	return offset, end
}
