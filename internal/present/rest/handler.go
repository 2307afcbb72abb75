package rest

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/middleware"
	"github.com/angulacms/angula/internal/service"
	"github.com/angulacms/angula/internal/usecase"
)

// PayloadCache caches rendered public payloads. Implementations must
// treat misses and backend outages identically: return not-found and
// let the handler rebuild.
type PayloadCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type Handler struct {
	page       *usecase.PageUsecase
	menu       *usecase.MenuUsecase
	article    *usecase.ArticleUsecase
	event      *usecase.EventUsecase
	newsletter *usecase.NewsletterUsecase
	analytics  *usecase.AnalyticsUsecase
	settings   *usecase.SettingsUsecase
	user       *usecase.UserUsecase
	auth       *service.AuthService
	cache      PayloadCache
}

func NewHandler(
	page *usecase.PageUsecase,
	menu *usecase.MenuUsecase,
	article *usecase.ArticleUsecase,
	event *usecase.EventUsecase,
	newsletter *usecase.NewsletterUsecase,
	analytics *usecase.AnalyticsUsecase,
	settings *usecase.SettingsUsecase,
	user *usecase.UserUsecase,
	auth *service.AuthService,
	cache PayloadCache,
) *Handler {
	return &Handler{
		page:       page,
		menu:       menu,
		article:    article,
		event:      event,
		newsletter: newsletter,
		analytics:  analytics,
		settings:   settings,
		user:       user,
		auth:       auth,
		cache:      cache,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {

	// Public surface: no credentials.
	e.POST("/api/auth/login", h.handleLogin)
	e.POST("/api/track", h.handleTrack)
	e.POST("/api/newsletter/subscribe", h.handleSubscribe)
	e.GET("/api/newsletter/confirm", h.handleConfirm)

	e.GET("/public/pages/:slug", h.handlePublicPage)
	e.GET("/public/menus/:name", h.handlePublicMenu)
	e.GET("/public/articles", h.handlePublicArticles)
	e.GET("/public/articles/:slug", h.handlePublicArticle)
	e.GET("/public/events/upcoming", h.handlePublicUpcomingEvents)

	// Admin surface: every route requires a bearer token.
	api := e.Group("/api", auth.RequireAuth)

	api.GET("/auth/me", h.handleMe)

	api.GET("/pages", h.handleListPages)
	api.POST("/pages", h.handleCreatePage)
	api.GET("/pages/:id", h.handleGetPage)
	api.PUT("/pages/:id", h.handleUpdatePage)
	api.DELETE("/pages/:id", h.handleDeletePage)
	api.GET("/pages/:id/revisions", h.handleListRevisions)
	api.POST("/pages/:id/revisions/:revisionId/restore", h.handleRestoreRevision)

	api.GET("/menus", h.handleListMenus)
	api.POST("/menus", h.handleCreateMenu)
	api.GET("/menus/:id", h.handleGetMenu)
	api.PUT("/menus/:id", h.handleReplaceMenuItems)
	api.DELETE("/menus/:id", h.handleDeleteMenu)

	api.GET("/articles", h.handleListArticles)
	api.GET("/articles/tags", h.handleListTags)
	api.POST("/articles", h.handleCreateArticle)
	api.GET("/articles/:id", h.handleGetArticle)
	api.PUT("/articles/:id", h.handleUpdateArticle)
	api.DELETE("/articles/:id", h.handleDeleteArticle)

	api.GET("/events", h.handleListEvents)
	api.POST("/events", h.handleCreateEvent)
	api.GET("/events/:id", h.handleGetEvent)
	api.PUT("/events/:id", h.handleUpdateEvent)
	api.DELETE("/events/:id", h.handleDeleteEvent)

	api.GET("/newsletter", h.handleListSubscribers)
	api.GET("/newsletter/export", h.handleExportSubscribers)
	api.DELETE("/newsletter/:id", h.handleDeleteSubscriber)

	api.GET("/analytics/stats", h.handleStats)
	api.GET("/analytics/live", h.handleLive)

	api.GET("/settings", h.handleGetSettings)
	api.PUT("/settings", h.handleUpdateSettings, auth.RequireRole(domain.RoleAdmin))

	// Account management is admin-only.
	users := api.Group("/users", auth.RequireRole(domain.RoleAdmin))
	users.GET("", h.handleListUsers)
	users.POST("", h.handleCreateUser)
	users.GET("/:id", h.handleGetUser)
	users.PUT("/:id", h.handleUpdateUser)
	users.DELETE("/:id", h.handleDeleteUser)
}

// parsePagination reads ?page and ?pageSize with sane bounds and
// returns the zero-based row offset alongside.
func parsePagination(c echo.Context) (page, pageSize, offset int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))
	if pageSize < 1 {
		pageSize = 30
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return page, pageSize, (page - 1) * pageSize
}
