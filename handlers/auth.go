package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"schooldir/consts"
	"schooldir/database"
	"schooldir/dto"
	"schooldir/repository"
	"schooldir/utils"
)

// Login handles POST /api/auth/login. Unknown usernames and wrong passwords
// produce the same response so username existence does not leak.
func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error())
		return
	}

	user, err := repository.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		// Only an absent user is a credential failure; anything else is a
		// datastore fault for the error boundary.
		if errors.Is(err, consts.ErrNotFound) {
			dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", "Invalid username or password")
			return
		}
		HandleServiceError(c, err)
		return
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", "Invalid username or password")
		return
	}

	token, _, err := utils.GenerateToken(user.ID, user.Username)
	if HandleServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, dto.LoginResp{
		Token: token,
		User:  dto.UserInfo{ID: user.ID, Username: user.Username},
	})
}

// Logout handles POST /api/auth/logout. Logout is deliberately tolerant: an
// absent or invalid credential is not an error, and the response always has
// status 200.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusOK, dto.LogoutResp{
			Message:   "Logout successful. Token was not provided or already invalid.",
			LoggedOut: true,
		})
		return
	}

	token, err := utils.ExtractTokenFromHeader(authHeader)
	if err == nil {
		if claims, verr := utils.ValidateToken(token); verr == nil {
			c.JSON(http.StatusOK, dto.LogoutResp{
				Message:   fmt.Sprintf("Logged out successfully. User: %s", claims.Username),
				LoggedOut: true,
			})
			return
		}
	}

	c.JSON(http.StatusOK, dto.LogoutResp{
		Message:   "Logout successful. Token was not provided or already invalid.",
		LoggedOut: true,
	})
}

// Register handles POST /api/auth/register
func Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Validation Error", "Invalid request format: "+err.Error())
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Validation Error", err.Error())
		return
	}

	user := &database.User{
		Username: req.Username,
		Password: hashedPassword,
	}
	if err := repository.CreateUser(c.Request.Context(), user); err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserInfo{ID: user.ID, Username: user.Username})
}
