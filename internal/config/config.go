// Package config assembles runtime settings for the server and the CLI.
//
// Values are layered: built-in defaults, then an optional .env file, then
// ECOSCAN_* environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/and161185/ecoscan/internal/errs"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "ECOSCAN_"

// Lookup resolves a variable name (without prefix) to a value.
type Lookup func(name string) (string, bool)

// Environment returns a Lookup over the process environment overlaid on
// the dotenv file at path. A missing file is not an error.
func Environment(path string) (Lookup, error) {
	file := map[string]string{}
	if path != "" {
		m, err := godotenv.Read(path)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return func(name string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			return v, true
		}
		v, ok := file[EnvPrefix+name]
		return v, ok
	}, nil
}

// overlay applies string-typed environment values onto typed fields.
type overlay struct {
	lookup Lookup
	errs   []string
}

func (o *overlay) str(name string, dst *string) {
	if v, ok := o.lookup(name); ok {
		*dst = v
	}
}

func (o *overlay) dur(name string, dst *time.Duration) {
	if v, ok := o.lookup(name); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			o.errs = append(o.errs, name+": "+err.Error())
			return
		}
		*dst = d
	}
}

func (o *overlay) num(name string, dst *int) {
	if v, ok := o.lookup(name); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			o.errs = append(o.errs, name+": "+err.Error())
			return
		}
		*dst = n
	}
}

func (o *overlay) flag(name string, dst *bool) {
	if v, ok := o.lookup(name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			o.errs = append(o.errs, name+": "+err.Error())
			return
		}
		*dst = b
	}
}

func (o *overlay) err() error {
	if len(o.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %s: %w", strings.Join(o.errs, "; "), errs.ErrInvalidInput)
}
