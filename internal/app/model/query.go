package model

// ListQuery is the common pagination/sort query string contract:
// ?page=&limit=&sort=. Sort takes a field name with an optional leading
// '-' for descending order; fields outside each repository's allow-list
// are ignored.
type ListQuery struct {
	Page  int    `form:"page,default=1" binding:"min=1"`
	Limit int    `form:"limit,default=25" binding:"min=1,max=100"`
	Sort  string `form:"sort"`
}

func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
