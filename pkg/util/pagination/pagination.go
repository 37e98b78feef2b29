// Package pagination holds the paging arithmetic shared by the list
// services.
package pagination

import "strconv"

// ParsePage coerces raw page input to a usable page number. Anything
// non-numeric or below 1 becomes page 1; paging input never fails.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset converts a page number to a row offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// TotalPages is ceil(total/pageSize) with a floor of one page, so an
// empty result still renders page 1 of 1.
func TotalPages(total int64, pageSize int) int {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}
