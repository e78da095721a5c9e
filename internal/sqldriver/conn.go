package sqldriver

import (
	"errors"
	"sync"

	"github.com/ignaciocaff/xmlsp/internal/core"
	"github.com/jmoiron/sqlx"
)

// ErrSystemNamingUnsupported is returned when system naming is requested on
// an open session. The naming mode of a database/sql session is fixed by its
// DSN.
var ErrSystemNamingUnsupported = errors.New("system naming must be selected in the DSN")

// ErrSystemNamingActive is returned when SQL naming is required on a session
// whose DSN selected system naming (NAM=1).
var ErrSystemNamingActive = errors.New("session was opened with system naming (NAM=1)")

// Conn is a core.Conn backed by a pinned *sqlx.Conn.
type Conn struct {
	// db is nil for sessions wrapped with WrapConn.
	db      *sqlx.DB
	conn    *sqlx.Conn
	release func()
	logger  core.Logger

	systemNaming bool

	mu    sync.Mutex
	debug bool
}

// WrapConn adapts a caller-owned session for use as
// core.Config.ExistingConnection. conn must come from sqlx's DB.Connx so its
// bind type is known. dsn is the data source name the session was opened
// with; database/sql cannot report the naming mode of an open session, so it
// is read from dsn. An empty dsn is taken to mean SQL naming.
func WrapConn(conn *sqlx.Conn, dsn string, logger core.Logger) *Conn {
	if logger == nil {
		logger = core.GetLogger()
	}
	return &Conn{
		conn:         conn,
		release:      func() {},
		logger:       logger,
		systemNaming: systemNamingSelected(dsn),
	}
}

// SetSystemNaming cannot switch naming on an open session. It succeeds
// only when the requested mode is the one the DSN selected and that mode
// is SQL naming.
func (c *Conn) SetSystemNaming(enabled bool) error {
	if enabled {
		return ErrSystemNamingUnsupported
	}
	if c.systemNaming {
		return ErrSystemNamingActive
	}
	return nil
}

func (c *Conn) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = enabled
}

func (c *Conn) debugEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.debug
}

func (c *Conn) trace(msg string, keysAndValues ...any) {
	if c.debugEnabled() {
		c.logger.Debug(msg, keysAndValues...)
	}
}

func (c *Conn) NewStatement() core.Stmt {
	return &Stmt{c: c}
}

// Disconnect returns the pinned session.
func (c *Conn) Disconnect() error {
	c.trace("disconnect")
	return c.conn.Close()
}

// Close closes the pool opened for this connection.
func (c *Conn) Close() error {
	defer c.release()
	if c.db == nil {
		return nil
	}
	c.trace("close")
	return c.db.Close()
}
