package pkg

import (
	"context"

	"github.com/ignaciocaff/xmlsp/internal/core"
)

// Execute calls the XMLSERVICE stored procedure using the driver registered
// with xmlsp.Configure.
func Execute(ctx context.Context, cfg core.Config, xmlInput string) (string, error) {
	return core.Invoke(ctx, core.GetDriver(), cfg, xmlInput)
}
