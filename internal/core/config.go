package core

import "sync"

// Defaults applied by Config.WithDefaults.
const (
	DefaultDatabase = "*LOCAL"
	DefaultIPC      = "*NA"
	DefaultCTL      = "*here"
	DefaultXSLib    = "QXMLSERV"
)

// Config describes a single procedure call.
type Config struct {
	// ExistingConnection, when set, is used instead of opening a new
	// connection. It is never disconnected or closed by Invoke.
	ExistingConnection Conn

	Database string
	Username string
	Password string
	IPC      string
	CTL      string
	XSLib    string

	// Verbose sets driver tracing on the connection, including a caller
	// supplied one. The zero value turns tracing off.
	Verbose bool
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c Config) WithDefaults() Config {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.IPC == "" {
		c.IPC = DefaultIPC
	}
	if c.CTL == "" {
		c.CTL = DefaultCTL
	}
	if c.XSLib == "" {
		c.XSLib = DefaultXSLib
	}
	return c
}

func (c Config) credentials() *Credentials {
	if c.Username == "" || c.Password == "" {
		return nil
	}
	return &Credentials{Username: c.Username, Password: c.Password}
}

var (
	mu     sync.RWMutex
	driver Driver
	logger Logger = nopLogger{}
)

// Configure registers the driver and logger used by the package level
// facade. A nil driver unregisters it; a nil logger discards all output.
func Configure(d Driver, l Logger) {
	mu.Lock()
	defer mu.Unlock()
	driver = d
	if l == nil {
		l = nopLogger{}
	}
	logger = l
}

func GetDriver() Driver {
	mu.RLock()
	defer mu.RUnlock()
	return driver
}

func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
