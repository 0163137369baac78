package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dsmirnov/promoboard/internal/common"
	"github.com/dsmirnov/promoboard/internal/logging"
	"github.com/dsmirnov/promoboard/internal/server/models"
)

type promotionHandlers struct {
	service PromotionService
	log     logging.Logger
}

type promotionRequest struct {
	Title      string  `json:"title"`
	FullPrice  float64 `json:"full_price"`
	PromoPrice float64 `json:"promo_price"`
	Location   string  `json:"location"`
}

type promotionResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	FullPrice  float64 `json:"full_price"`
	PromoPrice float64 `json:"promo_price"`
	Location   string  `json:"location"`
}

func toResponse(p *models.Promotion) promotionResponse {
	return promotionResponse{
		ID:         p.ID,
		Title:      p.Title,
		FullPrice:  p.FullPrice,
		PromoPrice: p.PromoPrice,
		Location:   p.Location,
	}
}

func (h *promotionHandlers) create(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json")
		return
	}

	ctx := c.Request.Context()
	promo, err := h.service.Create(ctx, &models.Promotion{
		Title:      req.Title,
		FullPrice:  req.FullPrice,
		PromoPrice: req.PromoPrice,
		Location:   req.Location,
	})
	if err != nil {
		h.log.Error(ctx, "promotion create failed", "error", err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "failed to create promotion")
		return
	}

	c.JSON(http.StatusCreated, toResponse(promo))
}

func (h *promotionHandlers) list(c *gin.Context) {
	ctx := c.Request.Context()
	promos, err := h.service.List(ctx)
	if err != nil {
		h.log.Error(ctx, "promotion list failed", "error", err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "failed to list promotions")
		return
	}

	result := make([]promotionResponse, 0, len(promos))
	for _, p := range promos {
		result = append(result, toResponse(p))
	}
	c.JSON(http.StatusOK, result)
}

func (h *promotionHandlers) get(c *gin.Context) {
	id, err := promotionID(c)
	if err != nil {
		return
	}

	ctx := c.Request.Context()
	promo, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "promotion not found")
			return
		}
		h.log.Error(ctx, "promotion get failed", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "failed to get promotion")
		return
	}

	c.JSON(http.StatusOK, toResponse(promo))
}

func (h *promotionHandlers) update(c *gin.Context) {
	id, err := promotionID(c)
	if err != nil {
		return
	}

	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json")
		return
	}

	ctx := c.Request.Context()
	err = h.service.Update(ctx, &models.Promotion{
		ID:         id,
		Title:      req.Title,
		FullPrice:  req.FullPrice,
		PromoPrice: req.PromoPrice,
		Location:   req.Location,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "promotion not found")
			return
		}
		h.log.Error(ctx, "promotion update failed", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "failed to update promotion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "promotion updated"})
}

func (h *promotionHandlers) delete(c *gin.Context) {
	id, err := promotionID(c)
	if err != nil {
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "promotion not found")
			return
		}
		h.log.Error(ctx, "promotion delete failed", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "failed to delete promotion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "promotion deleted"})
}

// promotionID parses the :id path parameter, responding with 400 on garbage.
func promotionID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid promotion id")
		return 0, err
	}
	return id, nil
}
