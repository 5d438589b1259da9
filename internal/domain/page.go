package domain

// Pagination describes the position of a page within an ordered collection.
// It is derived on every read and never persisted.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalPosts  int
	HasNextPage bool
	HasPrevPage bool
}

// NewPagination computes pagination flags for a page of size limit over a
// collection of total items. totalPages is zero for an empty collection;
// a page past the end yields HasNextPage=false and HasPrevPage=true.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
