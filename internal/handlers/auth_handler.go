package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regiondist/catalog-backend/internal/adapters/repository"
	"github.com/regiondist/catalog-backend/internal/models"
	"github.com/regiondist/catalog-backend/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Admins repository.AdminRepository
}

func NewAuthHandler(admins repository.AdminRepository) *AuthHandler {
	return &AuthHandler{Admins: admins}
}

// Login verifies admin credentials and issues the session cookie.
// Wrong email and wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	if err := validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Email and password are required"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	admin, err := h.Admins.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid email or password"))
			return
		}
		logrus.Errorf("admin lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Login failed"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid email or password"))
		return
	}

	token, err := utils.MintSessionToken(admin.ID.Hex(), admin.Email)
	if err != nil {
		logrus.Errorf("failed to mint session token: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Login failed"))
		return
	}

	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionTTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, utils.SuccessResponse("Logged in", gin.H{
		"id":    admin.ID,
		"email": admin.Email,
		"name":  admin.Name,
	}))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, utils.SuccessResponse("Logged out", nil))
}

// Verify reports the identity behind the current session. The auth
// middleware has already rejected anonymous callers by the time this runs.
func (h *AuthHandler) Verify(c *gin.Context) {
	adminID, _ := c.Get("adminId")
	email, _ := c.Get("adminEmail")
	c.JSON(http.StatusOK, utils.SuccessResponse("", gin.H{
		"isAuthenticated": true,
		"adminId":         adminID,
		"email":           email,
	}))
}
