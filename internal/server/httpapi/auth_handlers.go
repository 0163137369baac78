package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsmirnov/promoboard/internal/common"
	"github.com/dsmirnov/promoboard/internal/logging"
)

type authHandlers struct {
	service AuthService
	log     logging.Logger
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authHandlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.service.Register(ctx, req.Username, req.Password, req.Role); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			respondError(c, http.StatusBadRequest, "USER_EXISTS", "user already registered")
			return
		}
		h.log.Error(ctx, "registration failed", "username", req.Username, "error", err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "registration failed")
		return
	}

	// No sensitive data is echoed back, only an acknowledgement.
	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

func (h *authHandlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json")
		return
	}

	ctx := c.Request.Context()
	token, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// One message for both unknown user and wrong password.
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
			return
		}
		h.log.Error(ctx, "login failed", "username", req.Username, "error", err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
