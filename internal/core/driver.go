package core

import "context"

// Direction of a bound parameter. Only input parameters are used by the
// XMLSERVICE call.
type Direction int

const (
	In Direction = iota
	Out
	InOut
)

// ParamType is the SQL type a parameter is bound as.
type ParamType int

const (
	Char ParamType = iota
	CLOB
)

func (t ParamType) String() string {
	switch t {
	case Char:
		return "CHAR"
	case CLOB:
		return "CLOB"
	default:
		return "UNKNOWN"
	}
}

// Param is a single positional parameter.
type Param struct {
	Value     string
	Direction Direction
	Type      ParamType
}

// Credentials are passed to Driver.Open when both user and password are set.
type Credentials struct {
	Username string
	Password string
}

// Driver opens sessions against the remote database.
type Driver interface {
	// Open opens a new connection. creds is nil when the connection should be
	// opened with the database identifier only.
	Open(ctx context.Context, database string, creds *Credentials) (Conn, error)
}

// Conn is a single database session.
type Conn interface {
	// SetSystemNaming selects system (*SYS) naming when true and SQL naming
	// when false.
	SetSystemNaming(enabled bool) error
	// SetDebug toggles driver level tracing.
	SetDebug(enabled bool)
	// NewStatement allocates a statement bound to this session.
	NewStatement() Stmt
	Disconnect() error
	Close() error
}

// Stmt is a statement handle. Its methods are called in order:
// Prepare, BindParams, Execute, FetchAll, and finally Close.
type Stmt interface {
	Prepare(ctx context.Context, query string) error
	BindParams(ctx context.Context, params []Param) error
	Execute(ctx context.Context) error
	FetchAll(ctx context.Context) ([]Row, error)
	Close() error
}

// Row is one row of a result set.
type Row interface {
	// Value returns the text value of the named column.
	Value(column string) (string, bool)
}
