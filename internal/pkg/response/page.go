package response

// Page is the envelope for paginated list responses.
type Page struct {
	Items    any `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewPage builds a Page envelope.
func NewPage(items any, total, page, pageSize int) Page {
	return Page{Items: items, Total: total, Page: page, PageSize: pageSize}
}
