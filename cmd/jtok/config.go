package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/augurmark/jtok"
)

// fileConfig mirrors the subset of Options a config file can set, decoded
// with yaml.v3's KnownFields(true) so a typo'd key in the config file is
// rejected rather than silently ignored.
type fileConfig struct {
	Comments string `yaml:"comments"`
	MaxDepth int    `yaml:"max_depth"`
}

func loadConfig(path string) (jtok.Options, error) {
	var opts jtok.Options
	if path == "" {
		return opts, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return opts, fmt.Errorf("parsing config: %w", err)
	}

	switch fc.Comments {
	case "", "default":
		opts.Comments = jtok.Default
	case "allow":
		opts.Comments = jtok.AllowComments
	case "skip":
		opts.Comments = jtok.SkipComments
	default:
		return opts, fmt.Errorf("unknown comments mode %q", fc.Comments)
	}
	opts.MaxDepth = fc.MaxDepth
	return opts, nil
}
