package services

// PageInfo is the pagination envelope returned by every list query.
type PageInfo struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func pageInfo(page, limit int, total int64) PageInfo {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{Page: page, Limit: limit, Total: total, Pages: pages}
}
