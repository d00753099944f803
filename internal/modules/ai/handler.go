package ai

import (
	"github.com/awqat-travel/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	g := rg.Group("/admin/ai", adminMW)
	g.POST("/generate", h.generate)
	g.POST("/title", h.generateTitle)
	g.POST("/seo", h.generateSEO)
}

type generateDTO struct {
	Prompt string `json:"prompt"`
	Type   string `json:"type"`
}

// POST /admin/ai/generate
func (h *Handler) generate(c *gin.Context) {
	var dto generateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Type == "" {
		dto.Type = TypeBlog
	}

	content, err := h.svc.Generate(c.Request.Context(), dto.Prompt, dto.Type)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"content": content})
}

type topicDTO struct {
	Topic string `json:"topic"`
}

// POST /admin/ai/title
func (h *Handler) generateTitle(c *gin.Context) {
	var dto topicDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	title, err := h.svc.GenerateTitle(c.Request.Context(), dto.Topic)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"title": title})
}

type seoDTO struct {
	Title string `json:"title"`
}

// POST /admin/ai/seo
func (h *Handler) generateSEO(c *gin.Context) {
	var dto seoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.svc.GenerateSEO(c.Request.Context(), dto.Title)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
