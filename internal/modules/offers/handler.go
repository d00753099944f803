package offers

import (
	"net/url"

	"github.com/awqat-travel/core/internal/config"
	"github.com/awqat-travel/core/internal/i18n"
	"github.com/awqat-travel/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	feed *Feed
	site config.SiteConfig
}

func NewHandler(feed *Feed, site config.SiteConfig) *Handler {
	return &Handler{feed: feed, site: site}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	g := rg.Group("/offers")
	g.GET("", h.list)
	g.GET("/share", h.share)
	g.POST("/refresh", adminMW, h.refresh)
}

// GET /offers
// Without a selection the catalog root (category tiles) is returned; the
// `offer` query parameter selects a single named offer and overrides
// `category`. The offer value arrives URL-encoded from shared links.
func (h *Handler) list(c *gin.Context) {
	catalog := NewCatalog(h.feed.Fetch(c.Request.Context()))
	locale := i18n.FromContext(c)

	category := c.Query("category")
	offerName := c.Query("offer")

	if category == "" && offerName == "" {
		response.OK(c, gin.H{
			"title": locale.T("offers.title"),
			"tiles": catalog.Tiles(),
		})
		return
	}

	visible := catalog.Visible(category, offerName)
	response.OK(c, gin.H{
		"offers": visible,
		"count":  len(visible),
	})
}

// GET /offers/share?offer=<name>
// Returns the canonical catalog URL and WhatsApp inquiry link for an offer.
func (h *Handler) share(c *gin.Context) {
	name := c.Query("offer")
	if name == "" {
		response.BadRequest(c, "offer is required")
		return
	}

	offerURL := h.site.BaseURL + "/chalets?offer=" + url.QueryEscape(name)
	message := "أرغب بالاستفسار عن " + name
	whatsappURL := "https://wa.me/" + h.site.WhatsAppNumber + "?text=" + url.QueryEscape(message)

	response.OK(c, gin.H{
		"url":      offerURL,
		"whatsapp": whatsappURL,
	})
}

// POST /offers/refresh
// Admin cache bust after editing the sheet.
func (h *Handler) refresh(c *gin.Context) {
	h.feed.Invalidate(c.Request.Context())
	response.NoContent(c)
}
