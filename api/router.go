// Package api contains all endpoints available
package api

import (
	"context"
	"fmt"
	"io"
	"time"

	"bitwise74/gallery-api/aws"
	"bitwise74/gallery-api/db"
	"bitwise74/gallery-api/internal/service"
	"bitwise74/gallery-api/pkg/middleware"
	"bitwise74/gallery-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

// Storage is the blob store images live in. The S3 client implements
// it, tests swap in a fake
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type API struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Argon   *security.ArgonHash
	Signer  *security.TokenSigner
	Tokens  *service.TokenStore
	Storage Storage
}

func NewRouter() (*API, error) {
	a := &API{}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db

	makeLogger()

	a.Argon = security.NewArgon()
	a.Signer = &security.TokenSigner{
		AccessSecret:  []byte(viper.GetString("jwt.access_secret")),
		RefreshSecret: []byte(viper.GetString("jwt.refresh_secret")),
		AccessExpiry:  viper.GetDuration("jwt.access_expiry"),
		RefreshExpiry: viper.GetDuration("jwt.refresh_expiry"),
	}
	a.Tokens = service.NewTokenStore(
		db,
		[]byte(viper.GetString("jwt.hash_secret")),
		viper.GetDuration("jwt.refresh_expiry"),
		viper.GetDuration("jwt.blacklist_ttl"),
	)

	s3, err := aws.NewS3()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
	}
	a.Storage = s3

	a.Router = a.buildRouter()

	service.TokenCleanup(viper.GetDuration("cleanup.interval"), db)

	return a, nil
}

func (a *API) buildRouter() *gin.Engine {
	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderAccessToken, middleware.HeaderRefreshToken},
			ExposeHeaders:    []string{"Content-Length", middleware.HeaderAccessToken, middleware.HeaderRefreshToken},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
		middleware.NewErrorResponder(),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	authGate := middleware.NewAuthMiddleware(a.DB, a.Signer, a.Tokens)
	adminGate := middleware.RequireAdmin()
	maxUploadSize := viper.GetInt64("upload.max_size")

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)
	}

	auth := main.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/auth/login		-> Logs in a user, tokens go out in headers
		auth.POST("/login", a.AuthLogin)

		// POST /api/auth/register	-> Registers a new user in status pending
		auth.POST("/register", a.AuthRegister)

		// GET /api/auth/logout		-> Revokes the presented pair, idempotent
		// even when no tokens are presented at all
		auth.GET("/logout", a.AuthLogout)

		// GET /api/auth/status		-> Returns the authenticated user
		auth.GET("/status", authGate, a.AuthStatus)

		// GET /api/auth/token-refresh	-> Rotates a refresh token into a new pair
		auth.GET("/token-refresh", a.AuthRefresh)
	}

	user := main.Group("/user", middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/user/social-media	-> Public list of social links
		user.GET("/social-media", cacheFor(30), a.SocialMediaFetch)

		// POST /api/user/random-images	-> Public random image feed
		user.POST("/random-images", a.RandomImages)

		// PATCH /api/user/password	-> Lets a user change their own password
		user.PATCH("/password", authGate, a.UserPassword)

		// GET /api/user/:id		-> Fetches a user by ID
		user.GET("/:id", authGate, a.UserFetch)
	}

	likes := main.Group("/likes", authGate, middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/likes		-> Returns the user's liked images
		likes.GET("", a.LikeFetch)

		// POST /api/likes/:imageID/toggle -> Likes or unlikes an image
		likes.POST("/:imageID/toggle", a.LikeToggle)
	}

	admin := main.Group("/admin", authGate, adminGate)
	{
		// GET /api/admin/dashboard/stats -> Aggregate counters for the dashboard
		admin.GET("/dashboard/stats", a.AdminStats)

		// GET /api/admin/users		-> Paginated, filterable user listing
		admin.GET("/users", a.AdminUserList)

		// PUT /api/admin/users/:id	-> Partial update of any user field
		admin.PUT("/users/:id", a.AdminUserUpdate)

		// DELETE /api/admin/users/:id	-> Deletes a user (not yourself)
		admin.DELETE("/users/:id", a.AdminUserDelete)

		// PATCH /api/admin/users/:id/status -> Moves a user between statuses
		admin.PATCH("/users/:id/status", a.AdminUserStatus)

		// POST /api/admin/images/upload -> Uploads an image to S3
		admin.POST("/images/upload", middleware.BodySizeLimiter(maxUploadSize), a.AdminImageUpload)

		// GET /api/admin/images	-> Paginated image listing
		admin.GET("/images", a.AdminImageList)

		// GET /api/admin/images/:id	-> Fetches one image record
		admin.GET("/images/:id", a.AdminImageFetch)

		// DELETE /api/admin/images/:id	-> Deletes the S3 object and the record
		admin.DELETE("/images/:id", a.AdminImageDelete)

		// PUT /api/admin/social-media	-> Bulk upsert of all social links
		admin.PUT("/social-media", a.AdminSocialMediaUpdate)

		// PATCH /api/admin/social-media/:platform/toggle -> Flips a link's active flag
		admin.PATCH("/social-media/:platform/toggle", a.AdminSocialMediaToggle)
	}

	return router
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
