// Package config loads the uselist.yaml replay configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "uselist.yaml"

// Config represents the optional uselist.yaml configuration.
type Config struct {
	App    AppConfig  `yaml:"app"`
	List   ListConfig `yaml:"list"`
	Script []Step     `yaml:"script"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// ListConfig seeds the todo list.
type ListConfig struct {
	Items []string `yaml:"items,omitempty"`
}

// Step is one list operation to replay. Fields not used by Op are ignored.
type Step struct {
	Op     string   `yaml:"op"`
	Values []string `yaml:"values,omitempty"`
	Value  string   `yaml:"value,omitempty"`
	Index  int      `yaml:"index,omitempty"`
	Target int      `yaml:"target,omitempty"`
	Start  *int     `yaml:"start,omitempty"`
	End    *int     `yaml:"end,omitempty"`
	Count  *int     `yaml:"count,omitempty"`
	Length int      `yaml:"length,omitempty"`
	// Order is "asc", "desc" or empty for the default text ordering.
	Order string `yaml:"order,omitempty"`
}

// Ops lists the operations a Step may name.
var Ops = []string{
	"push", "pop", "shift", "unshift", "splice", "sort", "reverse",
	"fill", "copyWithin", "setLength", "clear", "set", "replace",
}

// Validate checks that the step names a known operation.
func (s Step) Validate() error {
	for _, op := range Ops {
		if s.Op == op {
			if op == "sort" && s.Order != "" && s.Order != "asc" && s.Order != "desc" {
				return fmt.Errorf("sort order must be asc or desc (got %q)", s.Order)
			}
			return nil
		}
	}
	return fmt.Errorf("unknown op %q", s.Op)
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path    string
	AppName string
	Items   []string
	Script  []Step
}

// LoadOptional reads the config file at path if present.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return &cfg, nil
}

// Resolve loads the config file (if present), validates the script and
// resolves defaults. The default app name comes from the go.mod next to the
// config file, falling back to the directory name.
func Resolve(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	for i, step := range cfg.Script {
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("script step %d: %w", i, err)
		}
	}

	dir := filepath.Dir(path)
	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath(dir), dir)
	}

	return &Resolved{
		Path:    path,
		AppName: appName,
		Items:   cfg.List.Items,
		Script:  cfg.Script,
	}, nil
}

// modulePath returns the module path declared by dir/go.mod, or "".
func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "uselist"
	}
	return base
}
