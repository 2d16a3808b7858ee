package redis

import (
	"context"
	"strconv"
	"time"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings the server and reports pool statistics
func (c *Client) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)
	latency := time.Since(start)

	stats := c.rdb.PoolStats()
	details := map[string]string{
		"addr":        c.config.Addr(),
		"database":    strconv.Itoa(c.config.Database),
		"latency":     latency.String(),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}

	if err != nil {
		details["last_error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}
	return RedisHealthCheck{Status: StatusUp, Details: details}
}
