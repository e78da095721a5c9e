package xmlsp

import (
	"context"

	"github.com/ignaciocaff/xmlsp/internal/core"
)

// Execute sends xmlInput to the XMLSERVICE stored procedure and returns the
// XML it produced. A connection opened through driver is closed before
// Execute returns; cfg.ExistingConnection is left open.
func Execute(ctx context.Context, driver Driver, cfg Config, xmlInput string) (string, error) {
	return core.Invoke(ctx, driver, cfg, xmlInput)
}

// ExecuteAsync is Execute run in a goroutine. The channel yields one Result.
func ExecuteAsync(ctx context.Context, driver Driver, cfg Config, xmlInput string) <-chan Result {
	return core.InvokeAsync(ctx, driver, cfg, xmlInput)
}
