package api

import (
	"errors"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type registerBody struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Whatsapp  string `json:"whatsapp"`
	Watermark string `json:"watermark"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func (a *API) AuthRegister(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBindJSON(&data); err != nil {
		fail(c, apierr.BadRequest("All fields are required"))
		return
	}

	if data.Name == "" || data.Email == "" || data.Whatsapp == "" || data.Watermark == "" || data.Password == "" {
		fail(c, apierr.BadRequest("All fields are required"))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		fail(c, apierr.BadRequest(err.Error()))
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		fail(c, apierr.BadRequest(err.Error()))
		return
	}

	role := model.RoleUser
	if data.Role != "" {
		role = model.Role(data.Role)
		if !role.Valid() {
			fail(c, apierr.BadRequest("Invalid role provided"))
			return
		}
	}

	email := validators.NormalizeEmail(data.Email)

	var found bool

	r := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&found)
	if r.Error != nil && !errors.Is(r.Error, gorm.ErrRecordNotFound) {
		fail(c, r.Error)
		return
	}

	if found {
		fail(c, apierr.Conflict(apierr.MsgUserExists))
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		fail(c, err)
		return
	}

	userID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		fail(c, err)
		return
	}

	user := model.User{
		ID:           userID,
		Name:         data.Name,
		Email:        email,
		Whatsapp:     data.Whatsapp,
		Watermark:    data.Watermark,
		PasswordHash: hash,
		Status:       model.StatusPending,
		Role:         role,
	}

	if err := a.DB.Create(&user).Error; err != nil {
		fail(c, err)
		return
	}

	if err := a.issueTokenPair(c, user.ID); err != nil {
		fail(c, err)
		return
	}

	zap.L().Info("User created", zap.String("userID", user.ID), zap.String("requestID", requestID))

	respond(c, http.StatusCreated, apierr.MsgRegisterSuccess, user)
}
