// Package repository contains the GORM data access layer. Repositories
// return raw gorm errors; translation to API errors happens at the
// controller boundary.
package repository

import "strings"

// sortClause maps a client sort key ("createdAt", "-likesCount") onto a SQL
// ORDER BY fragment using the per-repository column allow-list. Unknown keys
// fall back to the default ordering rather than erroring.
func sortClause(sort string, columns map[string]string, fallback string) string {
	if sort == "" {
		return fallback
	}

	direction := "ASC"
	key := sort
	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		key = sort[1:]
	}

	column, ok := columns[key]
	if !ok {
		return fallback
	}
	return column + " " + direction
}
