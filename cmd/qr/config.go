// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// config holds defaults read from a YAML file.  Options given on the
// command line override them.
type config struct {
	Level      string `yaml:"level"`      // l, m, q or h
	Version    int    `yaml:"version"`    // 0 for smallest
	Type       string `yaml:"type"`       // output type
	Scale      int    `yaml:"scale"`      // pixels per module
	Margin     *int   `yaml:"margin"`     // quiet zone
	Background string `yaml:"background"` // colour spec
	Foreground string `yaml:"foreground"` // colour spec
	Latin1     bool   `yaml:"latin1"`     // convert to Latin-1
	Upper      bool   `yaml:"upper"`      // convert to uppercase
}

// defaultConfigPath returns $XDG_CONFIG_HOME/qr.yaml, or "" if the
// configuration directory is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qr.yaml")
}

// parseConfig parses YAML configuration from r.  Unknown keys are
// errors.
func parseConfig(r io.Reader) (*config, error) {
	var c config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// loadConfig reads configuration from the named file.  If the file
// does not exist and must is false, it returns an empty config.
func loadConfig(name string, must bool) (*config, error) {
	if name == "" {
		return &config{}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		if !must && errors.Is(err, fs.ErrNotExist) {
			return &config{}, nil
		}
		return nil, err
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// check validates the values in c.
func (c *config) check() error {
	if c.Level != "" && (len(c.Level) != 1 ||
		!strings.Contains("lmqhLMQH", c.Level)) {
		return fmt.Errorf("level %q: want l, m, q or h", c.Level)
	}
	if c.Version < 0 || c.Version > 40 {
		return fmt.Errorf("version %d: want 0 to 40", c.Version)
	}
	if c.Type != "" && formatIndex(c.Type) < 0 {
		return fmt.Errorf("type %q: want one of %s", c.Type,
			strings.Join(formats, ", "))
	}
	if c.Scale < 0 || c.Scale > 1<<16 {
		return fmt.Errorf("scale %d: want 1 to 65536", c.Scale)
	}
	if c.Margin != nil && *c.Margin < 0 {
		return fmt.Errorf("margin %d: want 0 or more", *c.Margin)
	}
	for _, s := range []string{c.Background, c.Foreground} {
		if s != "" {
			var col rgba
			if err := col.Set(s, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
