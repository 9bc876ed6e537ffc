// Package router builds the gin engine and route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	watchlisthandler "stock_monitor/internal/feature/watchlist/transport/handler"
	"stock_monitor/internal/platform/http/handler"
	"stock_monitor/internal/platform/http/middleware"
)

// NewRouter creates a gin engine with middleware and all routes registered.
//
// CORS is wide open (all origins, methods and headers); the service is meant
// for local development, not a production security posture.
func NewRouter(root *handler.RootHandler, tickers *watchlisthandler.TickerHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
	)
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	r.GET("/healthz", handler.Health)
	r.GET("/", root.Root)

	r.POST("/tickers", tickers.Add)
	r.GET("/tickers", tickers.List)
	r.GET("/tickers/:ticker", tickers.Get)
	r.PATCH("/tickers/:ticker", tickers.Update)
	r.DELETE("/tickers/:ticker", tickers.Delete)

	return r
}
