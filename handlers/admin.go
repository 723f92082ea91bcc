package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"lumibelle/config"
	"lumibelle/utils"
)

const adminTokenTTL = 12 * time.Hour

// AdminLoginHandler handles POST /api/admin/login. Checks the supplied
// password against the configured bcrypt hash and issues a JWT.
func AdminLoginHandler(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "admin login not configured", "ADMIN_PASSWORD_HASH is not set")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	token, err := utils.GenerateToken("admin", adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "token generation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}
