package api

import (
	"errors"
	"net/http"
	"time"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/validators"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type userUpdateBody struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	Whatsapp    *string    `json:"whatsapp"`
	Watermark   *string    `json:"watermark"`
	Password    *string    `json:"password"`
	ActivatedAt *time.Time `json:"activatedAt"`
	Remarks     *string    `json:"remarks"`
}

// AdminUserUpdate applies a partial update, only fields present in the
// body change. A new password goes through the usual hashing
func (a *API) AdminUserUpdate(c *gin.Context) {
	id := c.Param("id")

	var data userUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		fail(c, apierr.BadRequest("Invalid request body"))
		return
	}

	var user model.User

	err := a.DB.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apierr.NotFound(apierr.MsgUserNotFound))
			return
		}

		fail(c, err)
		return
	}

	updates := map[string]any{}

	if data.Name != nil {
		updates["name"] = *data.Name
	}
	if data.Email != nil {
		if err := validators.EmailValidator(*data.Email); err != nil {
			fail(c, apierr.BadRequest(err.Error()))
			return
		}

		email := validators.NormalizeEmail(*data.Email)

		var taken bool

		r := a.DB.Model(model.User{}).
			Select("count(*) > 0").
			Where("email = ? AND id <> ?", email, id).
			Find(&taken)
		if r.Error != nil {
			fail(c, r.Error)
			return
		}

		if taken {
			fail(c, apierr.Conflict(apierr.MsgUserExists))
			return
		}

		updates["email"] = email
	}
	if data.Whatsapp != nil {
		updates["whatsapp"] = *data.Whatsapp
	}
	if data.Watermark != nil {
		updates["watermark"] = *data.Watermark
	}
	if data.Password != nil {
		if err := validators.PasswordValidator(*data.Password); err != nil {
			fail(c, apierr.BadRequest(err.Error()))
			return
		}

		hash, err := a.Argon.GenerateFromPassword(*data.Password)
		if err != nil {
			fail(c, err)
			return
		}
		updates["password_hash"] = hash
	}
	if data.ActivatedAt != nil {
		updates["activated_at"] = *data.ActivatedAt
	}
	if data.Remarks != nil {
		updates["remarks"] = *data.Remarks
	}

	if len(updates) > 0 {
		err = a.DB.Model(model.User{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			fail(c, err)
			return
		}
	}

	if err := a.DB.Where("id = ?", id).First(&user).Error; err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "User updated successfully", user)
}
