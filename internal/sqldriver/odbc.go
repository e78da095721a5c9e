//go:build cgo || windows

package sqldriver

// Registers the "odbc" database/sql driver. Outside Windows it links against
// the unixODBC driver manager, which needs cgo.
import _ "github.com/alexbrainman/odbc"
