package handlers

import (
	"net/http"
	"strconv"
	"time"

	tenantRepo "barberflow/database/repository/tenant"
	"barberflow/models"
	tenantService "barberflow/services/tenant"
	"barberflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler issues JWT tokens for tenant staff accounts and onboards
// new barbershops.
type AuthHandler struct {
	Tenants   tenantRepo.TenantRepository
	TenantSvc tenantService.TenantService
	Logger    *zap.Logger
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	user, err := h.Tenants.GetUserByUsername(body.Username)
	if err != nil {
		h.Logger.Error("Login: user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.TenantID, tokenLifetime)
	if err != nil {
		h.Logger.Error("Login: token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"tenantId":  user.TenantID,
		"username":  user.Username,
		"expiresIn": int(tokenLifetime.Seconds()),
	})
}

// Register handles POST /api/auth/register: creates the barbershop and its
// owner account in one step.
func (h *AuthHandler) Register(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		PhoneNumber string `json:"phoneNumber" binding:"required"`
		City        string `json:"city"`
		District    string `json:"district"`
		Username    string `json:"username" binding:"required"`
		Password    string `json:"password" binding:"required,min=8"`
		FullName    string `json:"fullName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	if existing, err := h.Tenants.GetUserByUsername(body.Username); err == nil && existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	}

	tenant := &models.Tenant{
		Name:        body.Name,
		PhoneNumber: utils.NormalizePhone(body.PhoneNumber),
		City:        body.City,
		District:    body.District,
	}
	if err := h.TenantSvc.Create(tenant); err != nil {
		h.Logger.Error("Register: tenant creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create tenant", "message": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error("Register: password hashing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	user := &models.TenantUser{
		TenantID:     tenant.ID,
		Username:     body.Username,
		PasswordHash: string(hash),
		FullName:     body.FullName,
		Role:         "owner",
		Active:       true,
	}
	if err := h.Tenants.CreateUser(user); err != nil {
		h.Logger.Error("Register: staff account creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), tenant.ID, tokenLifetime)
	if err != nil {
		h.Logger.Error("Register: token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"tenantId": tenant.ID,
		"username": user.Username,
	})
}
