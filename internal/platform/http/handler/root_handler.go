package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootHandler serves the service description at the root path.
type RootHandler struct {
	appName string
	version string
}

// NewRootHandler creates a RootHandler reporting the given name and version.
func NewRootHandler(appName, version string) *RootHandler {
	return &RootHandler{appName: appName, version: version}
}

// Root returns the service name, version and a map describing the
// available endpoints.
func (h *RootHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": h.appName,
		"version": h.version,
		"endpoints": gin.H{
			"add_ticker":    "POST /tickers",
			"list_tickers":  "GET /tickers",
			"get_ticker":    "GET /tickers/{ticker}",
			"update_ticker": "PATCH /tickers/{ticker}",
			"delete_ticker": "DELETE /tickers/{ticker}",
		},
	})
}
