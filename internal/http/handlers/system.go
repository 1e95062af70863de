package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	respondOK(c, http.StatusOK, "booking service running", gin.H{"status": "ok"})
}

// DBCheck pings the store handle.
func DBCheck(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			respondFail(c, http.StatusServiceUnavailable, "database not connected", nil)
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			respondFail(c, http.StatusServiceUnavailable, "database ping failed", nil)
			return
		}
		respondOK(c, http.StatusOK, "database connection OK", nil)
	}
}
