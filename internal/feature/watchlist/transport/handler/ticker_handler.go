// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_monitor/internal/feature/watchlist/domain/entity"
	"stock_monitor/internal/feature/watchlist/transport/http/dto"
	"stock_monitor/internal/feature/watchlist/usecase"
)

// TickerUsecase defines the watchlist operations consumed by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type TickerUsecase interface {
	AddTicker(ctx context.Context, ticker string) (*entity.StockTicker, error)
	ListTickers(ctx context.Context, activeOnly bool) ([]entity.StockTicker, error)
	GetTicker(ctx context.Context, ticker string) (*entity.StockTicker, error)
	UpdateTicker(ctx context.Context, ticker string, isActive *bool) (*entity.StockTicker, error)
	RemoveTicker(ctx context.Context, ticker string) error
}

// TickerHandler handles HTTP requests for watchlist tickers.
type TickerHandler struct {
	uc TickerUsecase
}

// NewTickerHandler creates a TickerHandler with the given usecase.
func NewTickerHandler(uc TickerUsecase) *TickerHandler {
	return &TickerHandler{uc: uc}
}

// normalize uppercases a raw symbol and strips surrounding whitespace.
// All lookups and writes operate on normalized symbols only.
func normalize(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Add handles POST /tickers.
// The symbol is validated against the external provider before it is stored.
//   - duplicate ticker → 400
//   - symbol the provider cannot resolve → 404
//   - success → 201 with the created record
func (h *TickerHandler) Add(c *gin.Context) {
	var req dto.TickerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	ticker := normalize(req.Ticker)

	t, err := h.uc.AddTicker(c.Request.Context(), ticker)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTickerExists):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("Ticker %s already exists", ticker)})
		case errors.Is(err, usecase.ErrInvalidTicker):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: fmt.Sprintf("Invalid ticker symbol: %s", ticker)})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewTickerResponse(t))
}

// List handles GET /tickers.
// The active_only query parameter defaults to true; inactive tickers are
// only included when it is explicitly false.
func (h *TickerHandler) List(c *gin.Context) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid active_only parameter"})
		return
	}

	tickers, err := h.uc.ListTickers(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.TickerResponse, 0, len(tickers))
	for i := range tickers {
		out = append(out, dto.NewTickerResponse(&tickers[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /tickers/:ticker.
func (h *TickerHandler) Get(c *gin.Context) {
	ticker := normalize(c.Param("ticker"))

	t, err := h.uc.GetTicker(c.Request.Context(), ticker)
	if err != nil {
		h.respondLookupError(c, ticker, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTickerResponse(t))
}

// Update handles PATCH /tickers/:ticker.
// LastUpdated is refreshed on every successful call, even when the request
// body changes nothing.
func (h *TickerHandler) Update(c *gin.Context) {
	ticker := normalize(c.Param("ticker"))

	var req dto.TickerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	t, err := h.uc.UpdateTicker(c.Request.Context(), ticker, req.IsActive)
	if err != nil {
		h.respondLookupError(c, ticker, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTickerResponse(t))
}

// Delete handles DELETE /tickers/:ticker. Success carries no body.
func (h *TickerHandler) Delete(c *gin.Context) {
	ticker := normalize(c.Param("ticker"))

	if err := h.uc.RemoveTicker(c.Request.Context(), ticker); err != nil {
		h.respondLookupError(c, ticker, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondLookupError maps a store lookup failure to its HTTP response.
func (h *TickerHandler) respondLookupError(c *gin.Context, ticker string, err error) {
	if errors.Is(err, usecase.ErrTickerNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: fmt.Sprintf("Ticker %s not found", ticker)})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}
