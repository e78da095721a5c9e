package sqldriver

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ignaciocaff/xmlsp/internal/core"
)

const fakeDriverName = "xmlspfake"

func init() {
	sql.Register(fakeDriverName, fakeSQLDriver{})
}

// scenario scripts the behaviour of one fake data source.
type scenario struct {
	columns    []string
	rows       [][]driver.Value
	prepareErr error
	queryErr   error
	nextErr    error

	mu          sync.Mutex
	queries     []string
	args        [][]driver.Value
	openConns   int
	closedConns int
	closedStmts int
	closedRows  int
}

func (sc *scenario) snapshot() (opened, closedConns, closedStmts, closedRows int) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.openConns, sc.closedConns, sc.closedStmts, sc.closedRows
}

var (
	scenariosMu sync.Mutex
	scenarios   = map[string]*scenario{}
	scenarioSeq int
)

func registerScenario(sc *scenario) string {
	scenariosMu.Lock()
	defer scenariosMu.Unlock()
	scenarioSeq++
	name := fmt.Sprintf("scenario-%d", scenarioSeq)
	scenarios[name] = sc
	return name
}

func identityDSN(database string, _ *core.Credentials) (string, func(), error) {
	return database, nil, nil
}

type fakeSQLDriver struct{}

// Open looks up the scenario named by the first ;-separated part of name.
func (fakeSQLDriver) Open(name string) (driver.Conn, error) {
	name, _, _ = strings.Cut(name, ";")
	scenariosMu.Lock()
	sc, ok := scenarios[name]
	scenariosMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("SQL30081N unknown data source %q", name)
	}
	sc.mu.Lock()
	sc.openConns++
	sc.mu.Unlock()
	return &fakeSQLConn{sc: sc}, nil
}

type fakeSQLConn struct {
	sc *scenario
}

func (c *fakeSQLConn) Prepare(query string) (driver.Stmt, error) {
	c.sc.mu.Lock()
	defer c.sc.mu.Unlock()
	c.sc.queries = append(c.sc.queries, query)
	if c.sc.prepareErr != nil {
		return nil, c.sc.prepareErr
	}
	return &fakeSQLStmt{sc: c.sc}, nil
}

func (c *fakeSQLConn) Close() error {
	c.sc.mu.Lock()
	defer c.sc.mu.Unlock()
	c.sc.closedConns++
	return nil
}

func (c *fakeSQLConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

type fakeSQLStmt struct {
	sc *scenario
}

func (s *fakeSQLStmt) Close() error {
	s.sc.mu.Lock()
	defer s.sc.mu.Unlock()
	s.sc.closedStmts++
	return nil
}

func (s *fakeSQLStmt) NumInput() int { return -1 }

func (s *fakeSQLStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("exec not supported")
}

func (s *fakeSQLStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.sc.mu.Lock()
	defer s.sc.mu.Unlock()
	s.sc.args = append(s.sc.args, args)
	if s.sc.queryErr != nil {
		return nil, s.sc.queryErr
	}
	return &fakeSQLRows{sc: s.sc}, nil
}

type fakeSQLRows struct {
	sc *scenario
	i  int
}

func (r *fakeSQLRows) Columns() []string { return r.sc.columns }

func (r *fakeSQLRows) Close() error {
	r.sc.mu.Lock()
	defer r.sc.mu.Unlock()
	r.sc.closedRows++
	return nil
}

func (r *fakeSQLRows) Next(dest []driver.Value) error {
	if r.i >= len(r.sc.rows) {
		if r.sc.nextErr != nil {
			return r.sc.nextErr
		}
		return io.EOF
	}
	copy(dest, r.sc.rows[r.i])
	r.i++
	return nil
}
