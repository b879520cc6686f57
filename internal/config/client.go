package config

import (
	"flag"
	"os"
	"path/filepath"
	"time"
)

// Client holds settings for cmd/cli.
type Client struct {
	Addr     string
	CACert   string
	Insecure bool
	Plain    bool
	DataDir  string
	Timeout  time.Duration
	DevKey   string // signs dev ID tokens for "login -dev"
}

// ClientDefaults returns defaults rooted at the user's config directory.
func ClientDefaults() Client {
	return Client{
		Addr:    "localhost:8443",
		DataDir: defaultDataDir(),
		Timeout: 45 * time.Second,
	}
}

func defaultDataDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "ecoscan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ecoscan")
}

// LoadClient layers defaults, env and global flags. It returns the remaining
// arguments (the subcommand and its flags).
func LoadClient(args []string, env Lookup) (*Client, []string, error) {
	c := ClientDefaults()

	o := &overlay{lookup: env}
	o.str("ADDR", &c.Addr)
	o.str("CACERT", &c.CACert)
	o.flag("INSECURE", &c.Insecure)
	o.flag("PLAINTEXT", &c.Plain)
	o.str("DATA_DIR", &c.DataDir)
	o.dur("TIMEOUT", &c.Timeout)
	o.str("DEV_KEY", &c.DevKey)
	if err := o.err(); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("ecoscan", flag.ContinueOnError)
	fs.StringVar(&c.Addr, "addr", c.Addr, "server address")
	fs.StringVar(&c.CACert, "cacert", c.CACert, "CA cert (PEM)")
	fs.BoolVar(&c.Insecure, "insecure", c.Insecure, "skip cert verify (dev)")
	fs.BoolVar(&c.Plain, "plaintext", c.Plain, "no TLS (dev)")
	fs.StringVar(&c.DataDir, "data", c.DataDir, "local data directory")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "per command timeout")
	fs.StringVar(&c.DevKey, "dev-key", c.DevKey, "HS256 key for dev login")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return &c, fs.Args(), nil
}

// PendingDir is where offline captures are kept.
func (c *Client) PendingDir() string { return filepath.Join(c.DataDir, "pending") }

// CredDir is where the encrypted credential store lives.
func (c *Client) CredDir() string { return filepath.Join(c.DataDir, "cred") }

// MirrorPath is the SQLite history mirror.
func (c *Client) MirrorPath() string { return filepath.Join(c.DataDir, "mirror.db") }
