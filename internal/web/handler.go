package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-registry/internal/domain"
	"user-registry/internal/service"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"

	msgInvalidPayload = "Invalid payload."
	msgEmailExists    = "Sorry. That email already exists."
	msgUserNotFound   = "User does not exist"
	msgInternal       = "Something went wrong."
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Handler wires HTTP routes to the user service.
type Handler struct {
	users  service.UserService
	logger *logrus.Logger
}

func NewHandler(users service.UserService, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware())
	router.SetHTMLTemplate(indexTemplate)

	router.GET("/users/ping", h.ping)
	router.POST("/users", h.createUser)
	router.GET("/users/:id", h.getUser)
	router.GET("/users", h.listUsers)
	router.GET("/", h.index)
	router.POST("/", h.createUserFromForm)
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

func (h *Handler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  statusSuccess,
		"message": "pong!!!",
	})
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "message": msgInvalidPayload})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "message": msgEmailExists})
			return
		}
		if !errors.Is(err, service.ErrInvalidInput) {
			// covers constraint violations that raced past the pre-check
			h.logger.Warnf("register user: %v", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "message": msgInvalidPayload})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  statusSuccess,
		"message": fmt.Sprintf("%s was added!", user.Email),
	})
}

func (h *Handler) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": statusFail, "message": msgUserNotFound})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": statusFail, "message": msgUserNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"data":   userToResponse(*user),
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.logger.Warnf("list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": statusFail, "message": msgInternal})
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"data":   gin.H{"users": resp},
	})
}

func (h *Handler) index(c *gin.Context) {
	h.renderIndex(c)
}

func (h *Handler) createUserFromForm(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")

	// Form submissions share the API validation path; duplicate emails are
	// dropped rather than inserted twice.
	if _, err := h.users.Register(c.Request.Context(), username, email); err != nil {
		h.logger.Warnf("register user from form: %v", err)
	}

	h.renderIndex(c)
}

func (h *Handler) renderIndex(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.logger.Warnf("list users: %v", err)
		c.String(http.StatusInternalServerError, msgInternal)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"users": users})
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Active:   user.Active,
	}
}
