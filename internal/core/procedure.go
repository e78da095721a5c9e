package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const procedureName = "iPLUGR512K"

// Result is the outcome of an asynchronous invocation.
type Result struct {
	Output string
	Err    error
}

// InvokeAsync runs Invoke in its own goroutine. The returned channel receives
// exactly one Result and is then closed.
func InvokeAsync(ctx context.Context, d Driver, cfg Config, xmlInput string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		out, err := Invoke(ctx, d, cfg, xmlInput)
		ch <- Result{Output: out, Err: err}
	}()
	return ch
}

// Invoke calls <XSLib>.iPLUGR512K with the XML input and returns the XML
// the procedure produced. The statement, and the connection when Invoke
// opened it, are released before Invoke returns.
func Invoke(ctx context.Context, d Driver, cfg Config, xmlInput string) (out string, err error) {
	log := GetLogger()
	id := uuid.NewString()
	cfg = cfg.WithDefaults()

	log.Debug("invoking procedure", "invocation_id", id, "xslib", cfg.XSLib, "database", cfg.Database)
	defer func() {
		if err != nil {
			log.Error("procedure call failed", "invocation_id", id, "error", err)
			return
		}
		log.Debug("procedure call completed", "invocation_id", id, "bytes", len(out))
	}()

	conn, owned, err := resolveConn(ctx, d, cfg)
	if err != nil {
		return "", err
	}

	var stmt Stmt
	defer release(log, id, conn, owned, &stmt)

	if err := conn.SetSystemNaming(false); err != nil {
		return "", wrap(ErrConnection, err)
	}
	conn.SetDebug(cfg.Verbose)

	stmt = conn.NewStatement()

	if err := stmt.Prepare(ctx, buildCmdText(cfg.XSLib)); err != nil {
		return "", wrap(ErrPrepare, err)
	}
	if err := stmt.BindParams(ctx, buildParams(cfg, xmlInput)); err != nil {
		return "", wrap(ErrBind, err)
	}
	if err := stmt.Execute(ctx); err != nil {
		return "", wrap(ErrExecute, err)
	}

	rows, err := stmt.FetchAll(ctx)
	if err != nil {
		return "", wrap(ErrFetch, err)
	}
	if len(rows) == 0 {
		return "", ErrEmptyResult
	}
	chunks, err := chunksFromRows(rows)
	if err != nil {
		return "", wrap(ErrFetch, err)
	}
	return joinChunks(chunks), nil
}

func resolveConn(ctx context.Context, d Driver, cfg Config) (Conn, bool, error) {
	if cfg.ExistingConnection != nil {
		return cfg.ExistingConnection, false, nil
	}
	if d == nil {
		return nil, false, ErrDriverUnavailable
	}
	conn, err := d.Open(ctx, cfg.Database, cfg.credentials())
	if err != nil {
		return nil, false, wrap(ErrConnection, err)
	}
	return conn, true, nil
}

// release closes the statement and, for owned connections, the session.
// Failures are logged only; they never change the call's outcome.
func release(log Logger, id string, conn Conn, owned bool, stmt *Stmt) {
	if *stmt != nil {
		if err := (*stmt).Close(); err != nil {
			log.Error("close statement", "invocation_id", id, "error", err)
		}
	}
	if !owned {
		return
	}
	if err := conn.Disconnect(); err != nil {
		log.Error("disconnect", "invocation_id", id, "error", err)
	}
	if err := conn.Close(); err != nil {
		log.Error("close connection", "invocation_id", id, "error", err)
	}
}

func buildCmdText(xslib string) string {
	return fmt.Sprintf("call %s.%s(?,?,?)", xslib, procedureName)
}

func buildParams(cfg Config, xmlInput string) []Param {
	return []Param{
		{Value: cfg.IPC, Direction: In, Type: Char},
		{Value: cfg.CTL, Direction: In, Type: Char},
		{Value: xmlInput, Direction: In, Type: CLOB},
	}
}
