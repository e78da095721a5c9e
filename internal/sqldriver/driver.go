// Package sqldriver implements the procedure invoker's driver capability on
// top of database/sql using sqlx. Any registered database/sql driver can be
// used; the DSN passed to it is produced by a DSNBuilder.
package sqldriver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/ignaciocaff/xmlsp/internal/core"
	"github.com/jmoiron/sqlx"
)

// Driver opens one dedicated database/sql session per core.Driver.Open call.
type Driver struct {
	driverName string
	dsn        DSNBuilder
	logger     core.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithDSNBuilder overrides the DSN builder selected from the driver name.
func WithDSNBuilder(b DSNBuilder) Option {
	return func(d *Driver) {
		d.dsn = b
	}
}

// WithLogger sets the logger used for connection diagnostics and debug
// tracing.
func WithLogger(l core.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// New creates a Driver for the database/sql driver registered as driverName.
func New(driverName string, opts ...Option) *Driver {
	d := &Driver{
		driverName: driverName,
		dsn:        BuilderFor(driverName),
		logger:     core.GetLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Lookup is New for drivers that must already be registered with
// database/sql. An unregistered name yields core.ErrDriverUnavailable.
func Lookup(driverName string, opts ...Option) (*Driver, error) {
	if !slices.Contains(sql.Drivers(), driverName) {
		return nil, fmt.Errorf("%w: database/sql driver %q is not registered", core.ErrDriverUnavailable, driverName)
	}
	return New(driverName, opts...), nil
}

// Open builds the DSN for database, opens a single-connection pool and
// pins one session from it.
func (d *Driver) Open(ctx context.Context, database string, creds *core.Credentials) (core.Conn, error) {
	dsn, release, err := d.dsn(database, creds)
	if err != nil {
		return nil, fmt.Errorf("build dsn: %w", err)
	}
	if release == nil {
		release = func() {}
	}

	db, err := sqlx.Open(d.driverName, dsn)
	if err != nil {
		release()
		return nil, err
	}
	db.SetMaxOpenConns(1)

	conn, err := db.Connx(ctx)
	if err != nil {
		release()
		return nil, errors.Join(err, db.Close())
	}

	d.logger.Debug("connection opened", "driver", d.driverName, "database", database)
	return &Conn{
		db:           db,
		conn:         conn,
		release:      release,
		logger:       d.logger,
		systemNaming: systemNamingSelected(dsn),
	}, nil
}
