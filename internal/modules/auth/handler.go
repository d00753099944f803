package auth

import (
	"github.com/awqat-travel/core/internal/middleware"
	"github.com/awqat-travel/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/login", h.login)
	g.POST("/register", h.register)
	g.GET("/me", authMW, h.me)
}

type credentialsDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Mail     string `json:"mail"`
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto credentialsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// POST /auth/register
// Only available until the first admin account exists.
func (h *Handler) register(c *gin.Context) {
	var dto credentialsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.Register(dto.Username, dto.Password, dto.Mail)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// GET /auth/me
func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}
