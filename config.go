// Package xmlsp calls the XMLSERVICE stored procedure (iPLUGR512K) with an
// XML document and returns the XML it produces. The database driver is
// injected; see internal/sqldriver for the database/sql implementation.
package xmlsp

import (
	"github.com/ignaciocaff/xmlsp/internal/core"
)

type (
	// Config describes a single call to iPLUGR512K. Empty fields take their
	// defaults: Database *LOCAL, IPC *NA, CTL *here, XSLib QXMLSERV.
	Config = core.Config

	Driver      = core.Driver
	Conn        = core.Conn
	Stmt        = core.Stmt
	Row         = core.Row
	Param       = core.Param
	Credentials = core.Credentials
	Logger      = core.Logger
	Result      = core.Result
)

var (
	ErrDriverUnavailable = core.ErrDriverUnavailable
	ErrConnection        = core.ErrConnection
	ErrPrepare           = core.ErrPrepare
	ErrBind              = core.ErrBind
	ErrExecute           = core.ErrExecute
	ErrFetch             = core.ErrFetch
	ErrEmptyResult       = core.ErrEmptyResult
)

// Configure registers the driver and logger used by pkg.Execute.
// Either may be nil: calls made without a driver and without an existing
// connection fail with ErrDriverUnavailable, and a nil logger discards output.
func Configure(driver Driver, logger Logger) {
	core.Configure(driver, logger)
}
