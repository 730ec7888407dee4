package handler

import (
	"net/http"

	"github.com/nolan/scribecloud/internal/api/response"
)

// Health returns a health check handler.
func Health(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	}
}
