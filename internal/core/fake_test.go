package core

import (
	"context"
	"errors"
	"sync"
)

type fakeRow map[string]string

func (r fakeRow) Value(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

func outRows(values ...string) []Row {
	rows := make([]Row, 0, len(values))
	for _, v := range values {
		rows = append(rows, fakeRow{OutputColumn: v})
	}
	return rows
}

type fakeDriver struct {
	openErr error
	conn    *fakeConn

	opens    int
	database string
	creds    *Credentials
}

func (d *fakeDriver) Open(_ context.Context, database string, creds *Credentials) (Conn, error) {
	d.opens++
	d.database = database
	d.creds = creds
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.conn, nil
}

type fakeConn struct {
	mu sync.Mutex

	namingErr error
	stmt      *fakeStmt

	systemNaming *bool
	debug        *bool
	statements   int
	disconnects  int
	closes       int
}

func (c *fakeConn) SetSystemNaming(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.namingErr != nil {
		return c.namingErr
	}
	c.systemNaming = &enabled
	return nil
}

func (c *fakeConn) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = &enabled
}

func (c *fakeConn) NewStatement() Stmt {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statements++
	return c.stmt
}

func (c *fakeConn) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnects++
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	return nil
}

type fakeStmt struct {
	prepareErr error
	bindErr    error
	executeErr error
	fetchErr   error
	closeErr   error
	rows       []Row

	query  string
	params []Param
	calls  []string
	closes int
}

func (s *fakeStmt) Prepare(_ context.Context, query string) error {
	s.calls = append(s.calls, "prepare")
	s.query = query
	return s.prepareErr
}

func (s *fakeStmt) BindParams(_ context.Context, params []Param) error {
	s.calls = append(s.calls, "bind")
	s.params = params
	return s.bindErr
}

func (s *fakeStmt) Execute(context.Context) error {
	s.calls = append(s.calls, "execute")
	return s.executeErr
}

func (s *fakeStmt) FetchAll(context.Context) ([]Row, error) {
	s.calls = append(s.calls, "fetch")
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.rows, nil
}

func (s *fakeStmt) Close() error {
	s.calls = append(s.calls, "close")
	s.closes++
	return s.closeErr
}

func newFakes(rows []Row) (*fakeDriver, *fakeConn, *fakeStmt) {
	stmt := &fakeStmt{rows: rows}
	conn := &fakeConn{stmt: stmt}
	return &fakeDriver{conn: conn}, conn, stmt
}

var errDriver = errors.New("SQLSTATE=42704 SQLCODE=-204")

type recordingLogger struct {
	mu     sync.Mutex
	errors []string
	debugs []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs = append(l.debugs, msg)
}

func (l *recordingLogger) Info(string, ...any) {}

func (l *recordingLogger) Error(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}
