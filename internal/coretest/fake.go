// Package coretest provides in-memory driver capabilities for tests outside
// the core package.
package coretest

import (
	"context"
	"sync"

	"github.com/ignaciocaff/xmlsp/internal/core"
)

// Driver hands out a new Conn per Open, each returning Rows.
type Driver struct {
	Rows    []string
	OpenErr error
	ExecErr error

	mu    sync.Mutex
	conns []*Conn
}

// NewDriver returns a Driver whose statements yield one OUT151 row per value.
func NewDriver(rows ...string) *Driver {
	return &Driver{Rows: rows}
}

func (d *Driver) Open(_ context.Context, _ string, _ *core.Credentials) (core.Conn, error) {
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}
	c := NewConn(d.Rows...)
	c.execErr = d.ExecErr
	d.mu.Lock()
	d.conns = append(d.conns, c)
	d.mu.Unlock()
	return c, nil
}

// Conns returns the connections opened so far.
func (d *Driver) Conns() []*Conn {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*Conn(nil), d.conns...)
}

// Conn counts lifecycle calls made against it.
type Conn struct {
	rows    []string
	execErr error

	mu          sync.Mutex
	disconnects int
	closes      int
	stmtCloses  int
}

func NewConn(rows ...string) *Conn {
	return &Conn{rows: rows}
}

func (c *Conn) SetSystemNaming(bool) error { return nil }
func (c *Conn) SetDebug(bool)              {}

func (c *Conn) NewStatement() core.Stmt {
	return &stmt{c: c}
}

func (c *Conn) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnects++
	return nil
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	return nil
}

// Counts reports disconnect, close and statement close calls.
func (c *Conn) Counts() (disconnects, closes, stmtCloses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disconnects, c.closes, c.stmtCloses
}

type stmt struct {
	c *Conn
}

func (s *stmt) Prepare(context.Context, string) error          { return nil }
func (s *stmt) BindParams(context.Context, []core.Param) error { return nil }

func (s *stmt) Execute(context.Context) error {
	return s.c.execErr
}

func (s *stmt) FetchAll(context.Context) ([]core.Row, error) {
	rows := make([]core.Row, 0, len(s.c.rows))
	for _, v := range s.c.rows {
		rows = append(rows, row(v))
	}
	return rows, nil
}

func (s *stmt) Close() error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	s.c.stmtCloses++
	return nil
}

type row string

func (r row) Value(column string) (string, bool) {
	if column != core.OutputColumn {
		return "", false
	}
	return string(r), true
}
