package sqldriver

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/ignaciocaff/xmlsp/internal/core"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	go_ora "github.com/sijms/go-ora/v2"
)

// Driver names with built-in DSN builders.
const (
	DriverODBC     = "odbc"
	DriverOracle   = "oracle"
	DriverPostgres = "pgx"
)

const defaultOraclePort = 1521

func init() {
	// go-ora binds by name; NAMED rebinds ? to :arg1, :arg2, ...
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
}

// DSNBuilder turns a database identifier and optional credentials into the
// data source name handed to sql.Open. release, when non-nil, is called once
// the connection is closed.
type DSNBuilder func(database string, creds *core.Credentials) (dsn string, release func(), err error)

// BuilderFor returns the DSN builder for a database/sql driver name.
// Unknown drivers get ODBCDSN.
func BuilderFor(driverName string) DSNBuilder {
	switch driverName {
	case DriverOracle:
		return OracleDSN
	case DriverPostgres:
		return PostgresDSN
	default:
		return ODBCDSN
	}
}

// ODBCDSN builds an ODBC connection string. database is either a data
// source name such as *LOCAL or a full connection string. SQL naming (NAM=0)
// is selected unless the connection string sets NAM itself.
func ODBCDSN(database string, creds *core.Credentials) (string, func(), error) {
	var parts []string
	if strings.Contains(database, "=") {
		parts = append(parts, strings.TrimSuffix(database, ";"))
	} else {
		parts = append(parts, "DSN="+database)
	}
	if creds != nil {
		parts = append(parts, "UID="+creds.Username, "PWD="+creds.Password)
	}
	if !hasODBCKey(database, "NAM") {
		parts = append(parts, "NAM=0")
	}
	return strings.Join(parts, ";"), nil, nil
}

func hasODBCKey(connStr, key string) bool {
	for _, kv := range strings.Split(connStr, ";") {
		k, _, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), key) {
			return true
		}
	}
	return false
}

// systemNamingSelected reports whether a semicolon separated connection
// string selects system naming (NAM=1).
func systemNamingSelected(dsn string) bool {
	for _, kv := range strings.Split(dsn, ";") {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), "NAM") {
			return strings.TrimSpace(v) == "1"
		}
	}
	return false
}

// OracleDSN builds a go-ora URL. database is either an oracle:// URL or
// host[:port]/service.
func OracleDSN(database string, creds *core.Credentials) (string, func(), error) {
	if strings.HasPrefix(database, "oracle://") {
		u, err := url.Parse(database)
		if err != nil {
			return "", nil, err
		}
		if creds != nil {
			u.User = url.UserPassword(creds.Username, creds.Password)
		}
		return u.String(), nil, nil
	}

	hostPort, service, ok := strings.Cut(database, "/")
	if !ok || service == "" {
		return "", nil, fmt.Errorf("oracle database %q: expected host[:port]/service", database)
	}
	host, port := hostPort, defaultOraclePort
	if h, p, err := net.SplitHostPort(hostPort); err == nil {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", nil, fmt.Errorf("oracle database %q: invalid port: %w", database, err)
		}
		host, port = h, n
	}

	var user, password string
	if creds != nil {
		user, password = creds.Username, creds.Password
	}
	return go_ora.BuildUrl(host, port, service, user, password, nil), nil, nil
}

// PostgresDSN parses database as a pgx connection string, applies the
// credentials and registers the resulting config with the pgx stdlib driver.
func PostgresDSN(database string, creds *core.Credentials) (string, func(), error) {
	cfg, err := pgx.ParseConfig(database)
	if err != nil {
		return "", nil, err
	}
	if creds != nil {
		cfg.User = creds.Username
		cfg.Password = creds.Password
	}
	name := stdlib.RegisterConnConfig(cfg)
	return name, func() { stdlib.UnregisterConnConfig(name) }, nil
}
