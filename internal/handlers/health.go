package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// Health reports process liveness and whether Redis is reachable.
func Health(rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		redisStatus := "ok"
		if err := rdb.Ping(ctx).Err(); err != nil {
			redisStatus = "unreachable"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"status":  "ok",
			"redis":   redisStatus,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
