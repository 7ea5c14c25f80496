package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"pirouette/models"
	"pirouette/services/pricing"
	"pirouette/utils"
)

const quoteCacheTTL = 60 * time.Second

// PricingHandler exposes the quote endpoint.
type PricingHandler struct {
	Engine pricing.Engine
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewPricingHandler(engine pricing.Engine, cache *redis.Client, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{Engine: engine, Cache: cache, Logger: logger}
}

// QuoteHandler computes a read-only price preview. Identical requests within
// the cache window are served from Redis; a quote has no side effects so a
// stale-by-seconds price is acceptable for previews.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := context.Background()
	cacheKey := quoteCacheKey(req)
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var quote models.PriceQuote
			if err := json.Unmarshal([]byte(cached), &quote); err == nil {
				c.JSON(http.StatusOK, quote)
				return
			}
		}
	}

	quote, err := h.Engine.Quote(ctx, req)
	if err != nil {
		var verr *pricing.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote request", "details": verr.Details})
			return
		}
		var nfErr *pricing.NotFoundError
		if errors.As(err, &nfErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
			return
		}
		h.Logger.Error("quote failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute quote"})
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(quote); err == nil {
			h.Cache.Set(ctx, cacheKey, data, quoteCacheTTL)
		}
	}

	c.JSON(http.StatusOK, quote)
}

func quoteCacheKey(req models.QuoteRequest) string {
	advance := "derived"
	if req.AdvanceBookingDays != nil {
		advance = fmt.Sprintf("%d", *req.AdvanceBookingDays)
	}
	raw := fmt.Sprintf("%s|%s|%s|%s|%s|%s", req.ServiceID, req.EventID, req.Date, req.StartTime, req.EndTime, advance)
	return "quote:" + utils.HashToken(raw)
}
