package sqldriver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ignaciocaff/xmlsp/internal/core"
	"github.com/jmoiron/sqlx"
)

var (
	errNotPrepared = errors.New("statement not prepared")
	errNotExecuted = errors.New("statement not executed")
)

// Stmt is a core.Stmt. Parameters are held until Execute, where
// database/sql binds them.
type Stmt struct {
	c    *Conn
	stmt *sqlx.Stmt
	args []any
	rows *sqlx.Rows
}

func (s *Stmt) Prepare(ctx context.Context, query string) error {
	query = s.c.conn.Rebind(query)
	s.c.trace("prepare", "query", query)
	stmt, err := s.c.conn.PreparexContext(ctx, query)
	if err != nil {
		return err
	}
	s.stmt = stmt
	return nil
}

func (s *Stmt) BindParams(_ context.Context, params []core.Param) error {
	if s.stmt == nil {
		return errNotPrepared
	}
	args := make([]any, 0, len(params))
	for i, p := range params {
		if p.Direction != core.In {
			return fmt.Errorf("parameter %d: only input parameters are supported", i+1)
		}
		switch p.Type {
		case core.Char, core.CLOB:
			args = append(args, p.Value)
		default:
			return fmt.Errorf("parameter %d: unsupported type %s", i+1, p.Type)
		}
		s.c.trace("bind", "position", i+1, "type", p.Type.String(), "length", len(p.Value))
	}
	s.args = args
	return nil
}

func (s *Stmt) Execute(ctx context.Context) error {
	if s.stmt == nil {
		return errNotPrepared
	}
	s.c.trace("execute", "params", len(s.args))
	rows, err := s.stmt.QueryxContext(ctx, s.args...)
	if err != nil {
		return err
	}
	s.rows = rows
	return nil
}

// FetchAll reads every remaining row. Column names are matched
// case-insensitively by the returned rows.
func (s *Stmt) FetchAll(_ context.Context) ([]core.Row, error) {
	if s.rows == nil {
		return nil, errNotExecuted
	}
	defer func() {
		_ = s.rows.Close()
	}()

	cols, err := s.rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []core.Row
	for s.rows.Next() {
		vals, err := s.rows.SliceScan()
		if err != nil {
			return nil, err
		}
		r := make(record, len(cols))
		for i, col := range cols {
			r[strings.ToUpper(col)] = text(vals[i])
		}
		out = append(out, r)
	}
	if err := s.rows.Err(); err != nil {
		return nil, err
	}
	s.c.trace("fetch", "rows", len(out))
	return out, nil
}

func (s *Stmt) Close() error {
	var errs []error
	if s.rows != nil {
		errs = append(errs, s.rows.Close())
	}
	if s.stmt != nil {
		errs = append(errs, s.stmt.Close())
	}
	return errors.Join(errs...)
}

type record map[string]string

func (r record) Value(column string) (string, bool) {
	v, ok := r[strings.ToUpper(column)]
	return v, ok
}

func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
