// ABOUTME: Bench status operations against the bench_status singleton row.
// ABOUTME: Each profile's resting flag is patched independently.

package rest

import (
	"context"
	"net/http"

	"github.com/harper/bench/internal/models"
)

const benchPath = "/bench_status?id=eq.1"

// benchRow is the server-side shape of the singleton bench_status row.
type benchRow struct {
	KnightResting bool `json:"knight_resting"`
	HornetResting bool `json:"hornet_resting"`
}

// GetBenchStatus reads the singleton row. A missing row reads as both
// profiles awake.
func (c *Client) GetBenchStatus(ctx context.Context) (models.BenchStatus, error) {
	var rows []benchRow
	if err := c.do(ctx, http.MethodGet, benchPath+"&select=knight_resting,hornet_resting", "", nil, &rows); err != nil {
		return models.BenchStatus{}, err
	}
	if len(rows) == 0 {
		return models.BenchStatus{}, nil
	}
	return models.BenchStatus{Knight: rows[0].KnightResting, Hornet: rows[0].HornetResting}, nil
}

// UpdateBenchStatus patches only the given profile's column.
func (c *Client) UpdateBenchStatus(ctx context.Context, profile models.Profile, resting bool) error {
	payload := map[string]bool{}
	if profile == models.Knight {
		payload["knight_resting"] = resting
	} else {
		payload["hornet_resting"] = resting
	}
	return c.do(ctx, http.MethodPatch, benchPath, "return=minimal", payload, nil)
}
