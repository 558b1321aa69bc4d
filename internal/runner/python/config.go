package python

import "time"

// Config is the immutable knob set of the Python pipeline. The screener and
// executor are pure functions of (input, config); nothing here is mutated
// after construction.
type Config struct {
	// PythonBin is the interpreter launched for each test case.
	PythonBin string
	// Timeout is the wall-clock budget of one test-case process.
	Timeout time.Duration
	// MemoryLimitMB is the best-effort address-space cap requested by the
	// generated harness. It is a courtesy to the child process, not a
	// trusted control.
	MemoryLimitMB int
	// MaxOutputLen caps the raw-stdout fallback kept in a result.
	MaxOutputLen int
	// MaxStderrLen caps the stderr excerpt kept in a result.
	MaxStderrLen int
	// BannedModules is the screener's deny-list of module names.
	BannedModules []string
}

// DefaultConfig mirrors the production limits of the assessment platform.
func DefaultConfig() Config {
	return Config{
		PythonBin:     "python3",
		Timeout:       10 * time.Second,
		MemoryLimitMB: 128,
		MaxOutputLen:  10000,
		MaxStderrLen:  500,
		BannedModules: defaultBannedModules(),
	}
}

func defaultBannedModules() []string {
	return []string{
		"os", "subprocess", "sys", "socket", "requests",
		"urllib", "http", "ftplib", "smtplib", "telnetlib",
		"pickle", "marshal", "shelve", "dbm",
		"ctypes", "multiprocessing", "threading",
		"__builtins__", "eval", "exec", "compile",
		"importlib", "__import__",
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PythonBin == "" {
		c.PythonBin = def.PythonBin
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.MemoryLimitMB <= 0 {
		c.MemoryLimitMB = def.MemoryLimitMB
	}
	if c.MaxOutputLen <= 0 {
		c.MaxOutputLen = def.MaxOutputLen
	}
	if c.MaxStderrLen <= 0 {
		c.MaxStderrLen = def.MaxStderrLen
	}
	if c.BannedModules == nil {
		c.BannedModules = def.BannedModules
	}
	return c
}
