// Package controller contains the gin HTTP handlers. Controllers bind and
// validate input, call services, and shape the response envelope; all policy
// decisions live below them.
package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/andresrv/blogpress-backend/internal/app/model"
	apperrors "github.com/andresrv/blogpress-backend/internal/errors"
)

// parseIDParam reads a numeric path parameter. Non-numeric values are a 400,
// distinct from the 404 a well-formed but unknown ID produces.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.RespondWithError(c, 400, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}

// bindListQuery binds page/limit/sort with their defaults.
func bindListQuery(c *gin.Context) (*model.ListQuery, bool) {
	var query model.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.BadRequest(c, "Invalid pagination parameters")
		return nil, false
	}
	return &query, true
}

// listEnvelope is the shared shape for paginated collection responses.
func listEnvelope(data interface{}, count int, total int64, query *model.ListQuery) gin.H {
	return gin.H{
		"success": true,
		"count":   count,
		"total":   total,
		"pagination": gin.H{
			"page":  query.Page,
			"limit": query.Limit,
		},
		"data": data,
	}
}
