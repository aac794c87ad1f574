package requests

type Pagination struct {
	Page     int
	PageSize int
	Search   string
}
