package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope. Failures go through
// the error responder middleware, which produces the success=false
// variant of the same shape
func respond(c *gin.Context, status int, message string, payload any) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"payload": payload,
	})
}

// fail hands the error to the responder middleware and stops the chain
func fail(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

type pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

func parsePage(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}

	return page, limit, (page - 1) * limit
}

func makePagination(total int64, page, limit int) pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
