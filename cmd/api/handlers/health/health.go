package health

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/user/infras/redis"
	"github.com/vidora/vidora/pkg/response"
)

type componentStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Healthcheck pings MySQL and redis and reports per-component status. The
// endpoint stays 200 as long as the process can answer at all; callers read
// the component map.
func Healthcheck(ctx context.Context, c *app.RequestContext) {
	components := map[string]componentStatus{}

	if err := db.Ping(ctx); err != nil {
		components["mysql"] = componentStatus{Status: "down", Error: err.Error()}
	} else {
		components["mysql"] = componentStatus{Status: "up"}
	}
	if err := redis.Ping(ctx); err != nil {
		components["redis"] = componentStatus{Status: "down", Error: err.Error()}
	} else {
		components["redis"] = componentStatus{Status: "up"}
	}

	overall := "ok"
	for _, status := range components {
		if status.Status != "up" {
			overall = "degraded"
		}
	}
	response.SendSuccess(c, map[string]interface{}{
		"status":     overall,
		"components": components,
	}, "Healthcheck completed")
}
