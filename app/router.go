// Package app contains all endpoints available
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/Maycoooz/DD-bot/app/admin"
	"github.com/Maycoooz/DD-bot/app/auth"
	"github.com/Maycoooz/DD-bot/app/librarian"
	"github.com/Maycoooz/DD-bot/app/parent"
	"github.com/Maycoooz/DD-bot/app/review"
	"github.com/Maycoooz/DD-bot/app/root"
	"github.com/Maycoooz/DD-bot/app/user"
	"github.com/Maycoooz/DD-bot/db"
	"github.com/Maycoooz/DD-bot/internal"
	"github.com/Maycoooz/DD-bot/internal/model"
	"github.com/Maycoooz/DD-bot/internal/service"
	"github.com/Maycoooz/DD-bot/pkg/middleware"
	"github.com/Maycoooz/DD-bot/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	// Each engine carries its own cache store. The entries key by
	// request URI only, so a shared store would leak responses between
	// engines backed by different databases
	store := persist.NewMemoryStore(time.Minute)
	cacheFor := func(sec int) gin.HandlerFunc {
		return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
	}

	d := &internal.Deps{
		Argon: security.New(),
		Mail:  service.NewMailQueue(),
	}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database

	if err := db.Seed(database, d.Argon); err != nil {
		return nil, fmt.Errorf("failed to seed database, %w", err)
	}

	router := gin.New()

	origins := strings.Split(viper.GetString("host.cors"), ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
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
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("username"); v != "" {
					fields = append(fields, zap.String("username", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	rateLimit := viper.GetInt("security.rate_limit")

	jwt := middleware.NewAuthMiddleware(database)
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
		CleanupInterval:   time.Second,
	})
	bodyLimit := middleware.BodySizeLimiter(1 << 20)

	m := router.Group("", rateLimiter, bodyLimit)
	{
		// HEAD /heartbeat 			-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /landing-page-content		-> Public marketing page rows
		m.GET("/landing-page-content", cacheFor(60), func(c *gin.Context) { root.LandingPageContent(c, d) })
	}

	a := m.Group("/auth")
	{
		// POST /auth/register			-> Registers a new parent account
		a.POST("/register", func(c *gin.Context) { auth.ParentRegister(c, d) })

		// POST /auth/register-librarian	-> Registers a new librarian account
		a.POST("/register-librarian", func(c *gin.Context) { auth.LibrarianRegister(c, d) })

		// POST /auth/token			-> Logs in a user and returns a JWT token
		a.POST("/token", func(c *gin.Context) { auth.Login(c, d) })

		// GET /auth/verify			-> Verifies a new account via the mailed token
		a.GET("/verify", func(c *gin.Context) { auth.VerifyEmail(c, d) })
	}

	u := m.Group("/users", jwt)
	{
		// GET /users/me/			-> Returns the profile of the logged in user
		u.GET("/me/", func(c *gin.Context) { user.Fetch(c, d) })

		// PATCH /users/me/			-> Updates the profile of the logged in user
		u.PATCH("/me/", func(c *gin.Context) { user.Update(c, d) })

		// PATCH /users/change-password/:id	-> Changes a password, own or a child's
		u.PATCH("/change-password/:id", func(c *gin.Context) { user.ChangePassword(c, d) })
	}

	p := m.Group("/parent", jwt, middleware.RequireRoles(model.RoleParent))
	{
		// GET /parent/interests		-> Lists the interest vocabulary
		p.GET("/interests", cacheFor(5*60), func(c *gin.Context) { parent.Interests(c, d) })

		// POST /parent/create-child		-> Creates a child account
		p.POST("/create-child", func(c *gin.Context) { parent.CreateChild(c, d) })

		// GET /parent/my-children		-> Lists the parent's children
		p.GET("/my-children", func(c *gin.Context) { parent.MyChildren(c, d) })

		// PATCH /parent/update-child/:id	-> Updates an owned child account
		p.PATCH("/update-child/:id", func(c *gin.Context) { parent.UpdateChild(c, d) })

		// DELETE /parent/delete-child/:id	-> Deletes an owned child account
		p.DELETE("/delete-child/:id", func(c *gin.Context) { parent.DeleteChild(c, d) })
	}

	l := m.Group("/librarian")
	{
		// GET /librarian/view-all-books	-> Public paginated book catalog
		l.GET("/view-all-books", cacheFor(15), func(c *gin.Context) { librarian.ViewAllBooks(c, d) })

		// GET /librarian/view-all-videos	-> Public paginated video catalog
		l.GET("/view-all-videos", cacheFor(15), func(c *gin.Context) { librarian.ViewAllVideos(c, d) })

		// GET /librarian/media-sources		-> Distinct uploader usernames
		l.GET("/media-sources", cacheFor(60), func(c *gin.Context) { librarian.Sources(c, d) })

		lw := l.Group("", jwt, middleware.RequireRoles(model.RoleLibrarian))
		{
			// POST /librarian/add-book	-> Adds a book to the catalog
			lw.POST("/add-book", func(c *gin.Context) { librarian.AddBook(c, d) })

			// POST /librarian/add-video	-> Adds a video to the catalog
			lw.POST("/add-video", func(c *gin.Context) { librarian.AddVideo(c, d) })

			// PATCH /librarian/edit-book/:id	-> Edits a book
			lw.PATCH("/edit-book/:id", func(c *gin.Context) { librarian.EditBook(c, d) })

			// PATCH /librarian/edit-video/:id	-> Edits a video
			lw.PATCH("/edit-video/:id", func(c *gin.Context) { librarian.EditVideo(c, d) })

			// DELETE /librarian/delete-book/:id	-> Deletes a book
			lw.DELETE("/delete-book/:id", func(c *gin.Context) { librarian.DeleteBook(c, d) })

			// DELETE /librarian/delete-video/:id	-> Deletes a video
			lw.DELETE("/delete-video/:id", func(c *gin.Context) { librarian.DeleteVideo(c, d) })
		}
	}

	ad := m.Group("/admin", jwt, middleware.RequireRoles(model.RoleAdmin))
	{
		// GET /admin/viewAllUsers		-> Lists parents and children with counts
		ad.GET("/viewAllUsers", func(c *gin.Context) { admin.ViewAllUsers(c, d) })

		// DELETE /admin/delete-user/:id	-> Deletes a parent or child account
		ad.DELETE("/delete-user/:id", func(c *gin.Context) { admin.DeleteUser(c, d) })

		// GET /admin/view-all-librarians	-> Lists librarian accounts
		ad.GET("/view-all-librarians", func(c *gin.Context) { admin.ViewAllLibrarians(c, d) })

		// PATCH /admin/approve-librarian/:id	-> Marks a librarian as verified
		ad.PATCH("/approve-librarian/:id", func(c *gin.Context) { admin.ApproveLibrarian(c, d) })

		// DELETE /admin/delete-librarian/:id	-> Deletes a librarian and their uploads
		ad.DELETE("/delete-librarian/:id", func(c *gin.Context) { admin.DeleteLibrarian(c, d) })

		// GET /admin/librarian/:id/books	-> Lists a librarian's books
		ad.GET("/librarian/:id/books", func(c *gin.Context) { admin.LibrarianBooks(c, d) })

		// GET /admin/librarian/:id/videos	-> Lists a librarian's videos
		ad.GET("/librarian/:id/videos", func(c *gin.Context) { admin.LibrarianVideos(c, d) })

		// GET /admin/landing-page-content	-> Lists the marketing page rows
		ad.GET("/landing-page-content", func(c *gin.Context) { admin.LandingPageContent(c, d) })

		// PUT /admin/landing-page-content/:id	-> Updates a marketing page row
		ad.PUT("/landing-page-content/:id", func(c *gin.Context) { admin.UpdateLandingPageContent(c, d) })
	}

	r := m.Group("/reviews", jwt)
	{
		// POST /reviews/app			-> Saves an app review
		r.POST("/app", func(c *gin.Context) { review.Create(c, d) })

		// GET /reviews/my-reviews		-> Lists the user's own reviews
		r.GET("/my-reviews", func(c *gin.Context) { review.Mine(c, d) })

		// DELETE /reviews/:id			-> Deletes an owned review
		r.DELETE("/:id", func(c *gin.Context) { review.Delete(c, d) })
	}

	d.Mail.StartWorkerPool()

	// Unverified accounts have a week to click the mail link
	go service.AccountCleanup(time.Hour*24, time.Hour*24*7, database)

	return router, nil
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

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
