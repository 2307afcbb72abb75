package rest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/presenter"
	"github.com/angulacms/angula/locale"
)

type publicPage struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Locale      string     `json:"locale"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Template    string     `json:"template,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

type publicMenuItem struct {
	Label    string           `json:"label"`
	Href     string           `json:"href,omitempty"`
	Target   string           `json:"target"`
	Children []publicMenuItem `json:"children,omitempty"`
}

type publicArticle struct {
	Slug        string     `json:"slug"`
	Locale      string     `json:"locale"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

type publicEvent struct {
	Slug        string     `json:"slug"`
	Locale      string     `json:"locale"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

func (h *Handler) handlePublicPage(c echo.Context) error {
	ctx := c.Request().Context()

	slug := c.Param("slug")
	loc := c.QueryParam("locale")
	fallback := h.defaultLocale(c)
	if loc == "" {
		loc = fallback
	}

	cacheKey := fmt.Sprintf("public:page:%s:%s", slug, loc)
	if cached, ok := h.cache.Get(cacheKey); ok {
		return c.JSONBlob(200, cached)
	}

	page, err := h.page.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return presenter.Error(c, err)
	}

	rendered := publicPage{
		ID:          page.ID,
		Slug:        page.Slug,
		Locale:      loc,
		Title:       locale.Resolve(page.Title, loc, fallback),
		Content:     locale.Resolve(page.Content, loc, fallback),
		Excerpt:     locale.Resolve(page.Excerpt, loc, fallback),
		Template:    page.Template,
		PublishedAt: page.PublishedAt,
	}

	if payload, err := json.Marshal(rendered); err == nil {
		h.cache.Set(cacheKey, payload)
	}

	return presenter.OK(c, rendered)
}

func (h *Handler) handlePublicMenu(c echo.Context) error {
	ctx := c.Request().Context()

	name := c.Param("name")
	loc := c.QueryParam("locale")
	fallback := h.defaultLocale(c)
	if loc == "" {
		loc = fallback
	}

	cacheKey := fmt.Sprintf("public:menu:%s:%s", name, loc)
	if cached, ok := h.cache.Get(cacheKey); ok {
		return c.JSONBlob(200, cached)
	}

	menu, err := h.menu.GetByName(ctx, name)
	if err != nil {
		return presenter.Error(c, err)
	}

	items := make([]publicMenuItem, 0, len(menu.Items))
	for _, item := range menu.Items {
		rendered := h.renderMenuItem(c, item, loc, fallback)
		rendered.Children = make([]publicMenuItem, 0, len(item.Children))
		for _, child := range item.Children {
			rendered.Children = append(rendered.Children, h.renderMenuItem(c, child, loc, fallback))
		}
		items = append(items, rendered)
	}

	response := echo.Map{"name": menu.Name, "items": items}
	if payload, err := json.Marshal(response); err == nil {
		h.cache.Set(cacheKey, payload)
	}

	return presenter.OK(c, response)
}

// renderMenuItem resolves the item's link. An internal page reference
// wins over a raw URL; a reference to a missing or unpublished page
// degrades to the URL, and to no link at all when none is set.
func (h *Handler) renderMenuItem(c echo.Context, item domain.MenuItem, loc, fallback string) publicMenuItem {
	ctx := c.Request().Context()

	rendered := publicMenuItem{
		Label:  locale.Resolve(item.Label, loc, fallback),
		Target: item.Target,
	}

	if item.PageID != nil {
		page, err := h.page.Get(ctx, *item.PageID)
		if err == nil && page.Status == domain.StatusPublished {
			rendered.Href = fmt.Sprintf("/%s/%s", loc, page.Slug)
			return rendered
		}
	}
	if item.URL != nil && *item.URL != "" {
		rendered.Href = *item.URL
	}
	return rendered
}

func (h *Handler) handlePublicArticles(c echo.Context) error {
	ctx := c.Request().Context()

	loc := c.QueryParam("locale")
	fallback := h.defaultLocale(c)
	if loc == "" {
		loc = fallback
	}

	page, pageSize, offset := parsePagination(c)

	articles, total, err := h.article.List(ctx, domain.StatusPublished, c.QueryParam("tag"), offset, pageSize)
	if err != nil {
		return presenter.Error(c, err)
	}

	rendered := make([]publicArticle, 0, len(articles))
	for _, a := range articles {
		rendered = append(rendered, publicArticle{
			Slug:        a.Slug,
			Locale:      loc,
			Title:       locale.Resolve(a.Title, loc, fallback),
			Excerpt:     locale.Resolve(a.Excerpt, loc, fallback),
			Tags:        a.Tags,
			PublishedAt: a.PublishedAt,
		})
	}

	return presenter.OK(c, presenter.Paginated{
		Data:     rendered,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *Handler) handlePublicArticle(c echo.Context) error {
	ctx := c.Request().Context()

	loc := c.QueryParam("locale")
	fallback := h.defaultLocale(c)
	if loc == "" {
		loc = fallback
	}

	article, err := h.article.GetPublishedBySlug(ctx, c.Param("slug"))
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, publicArticle{
		Slug:        article.Slug,
		Locale:      loc,
		Title:       locale.Resolve(article.Title, loc, fallback),
		Excerpt:     locale.Resolve(article.Excerpt, loc, fallback),
		Content:     locale.Resolve(article.Content, loc, fallback),
		Tags:        article.Tags,
		PublishedAt: article.PublishedAt,
	})
}

func (h *Handler) handlePublicUpcomingEvents(c echo.Context) error {
	ctx := c.Request().Context()

	loc := c.QueryParam("locale")
	fallback := h.defaultLocale(c)
	if loc == "" {
		loc = fallback
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	events, err := h.event.ListUpcoming(ctx, limit)
	if err != nil {
		return presenter.Error(c, err)
	}

	rendered := make([]publicEvent, 0, len(events))
	for _, e := range events {
		rendered = append(rendered, publicEvent{
			Slug:        e.Slug,
			Locale:      loc,
			Title:       locale.Resolve(e.Title, loc, fallback),
			Description: locale.Resolve(e.Description, loc, fallback),
			Location:    locale.Resolve(e.Location, loc, fallback),
			StartsAt:    e.StartsAt,
			EndsAt:      e.EndsAt,
		})
	}

	return presenter.OK(c, rendered)
}

func (h *Handler) defaultLocale(c echo.Context) string {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil || settings.DefaultLocale == "" {
		return "en"
	}
	return settings.DefaultLocale
}

// siteLocales returns every configured content locale including the
// default, for cache key fan-out.
func (h *Handler) siteLocales(c echo.Context) []string {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return []string{"en"}
	}

	locales := make([]string, 0, len(settings.Languages)+1)
	seen := map[string]bool{}
	for _, loc := range append(settings.Languages, settings.DefaultLocale, "en") {
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		locales = append(locales, loc)
	}
	return locales
}

// invalidatePublic drops the cached public renderings for the given
// page slugs or menu names, in every configured locale, so admin
// writes become visible without waiting out the cache TTL.
func (h *Handler) invalidatePublic(c echo.Context, kind string, keys ...string) {
	locales := h.siteLocales(c)
	for _, key := range keys {
		if key == "" {
			continue
		}
		for _, loc := range locales {
			h.cache.Delete(fmt.Sprintf("public:%s:%s:%s", kind, key, loc))
		}
	}
}
