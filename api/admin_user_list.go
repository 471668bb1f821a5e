package api

import (
	"net/http"
	"strings"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// AdminUserList returns a page of users, newest first, excluding the
// calling admin. Filters: status, role, free-text search over name,
// email and whatsapp
func (a *API) AdminUserList(c *gin.Context) {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgUnauthorized))
		return
	}

	page, limit, offset := parsePage(c, 10)

	q := a.DB.Model(model.User{}).Where("id <> ?", admin.ID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(whatsapp) LIKE ?",
			like, like, like,
		)
	}

	var total int64

	if err := q.Count(&total).Error; err != nil {
		fail(c, err)
		return
	}

	var users []model.User

	err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).
		Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Users retrieved successfully", gin.H{
		"users":      users,
		"pagination": makePagination(total, page, limit),
	})
}
