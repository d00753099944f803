package app

import (
	"github.com/awqat-travel/core/internal/i18n"
	"github.com/awqat-travel/core/internal/middleware"
	"github.com/awqat-travel/core/internal/modules/ai"
	"github.com/awqat-travel/core/internal/modules/auth"
	"github.com/awqat-travel/core/internal/modules/blog"
	"github.com/awqat-travel/core/internal/modules/bulk"
	"github.com/awqat-travel/core/internal/modules/category"
	"github.com/awqat-travel/core/internal/modules/csvio"
	"github.com/awqat-travel/core/internal/modules/offers"
	storagefile "github.com/awqat-travel/core/internal/modules/storage/file"
	pkgredis "github.com/awqat-travel/core/internal/pkg/redis"
	"github.com/awqat-travel/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	a.router.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	a.router.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	api := a.router.Group("/api/v1")
	authMW := middleware.Auth(a.db)
	adminMW := middleware.RequireAdmin(a.db)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Language context: expose the resolved locale and let visitors toggle.
	api.GET("/language", func(c *gin.Context) {
		response.OK(c, i18n.FromContext(c))
	})
	api.POST("/language/toggle", func(c *gin.Context) {
		toggled := i18n.FromContext(c).Toggled()
		i18n.Persist(c, toggled)
		response.OK(c, toggled)
	})

	feed := offers.NewFeed(a.cfg.Feed, rc, a.logger)
	offers.NewHandler(feed, a.cfg.Site).RegisterRoutes(api, adminMW)

	auth.NewHandler(auth.NewService(a.db)).RegisterRoutes(api, authMW)
	category.NewHandler(category.NewService(a.db)).RegisterRoutes(api, adminMW)
	blog.NewHandler(blog.NewService(a.db)).RegisterRoutes(api, adminMW)
	csvio.NewHandler(a.db).RegisterRoutes(api, adminMW)

	var store bulk.Store
	if rc != nil {
		store = bulk.NewRedisStore(rc)
	} else {
		store = bulk.NewMemoryStore()
	}
	bulk.NewHandler(bulk.NewService(a.db, store)).RegisterRoutes(api, adminMW)

	aiProvider := ai.NewProvider(a.cfg.AI)
	ai.NewHandler(ai.NewService(aiProvider, a.logger)).RegisterRoutes(api, adminMW)

	uploads := storagefile.NewService(a.cfg.S3, a.logger)
	storagefile.NewHandler(uploads).RegisterRoutes(api, adminMW)
}
