// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Source identifies the provenance of a raw configuration value. It is used
// for diagnostics only and never appears on the resolved surface.
type Source int

const (
	SourceDefault Source = iota
	SourceFile
	SourceEnv
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	default:
		return "unknown"
	}
}

// fileNames are the candidate base names probed when no explicit config file
// path is given, in probe order.
var fileNames = []string{"fluxa.yaml", "fluxa.yml", "fluxa.json", "fluxa.toml"}

// configDirNames are probed inside the user config directory.
var configDirNames = []string{"config.yaml", "config.yml", "config.json", "config.toml"}

// resolveFilePath returns the config file to read, or "" when no candidate
// exists. Search order: explicit override, working directory, user config
// directory. An explicit override is returned even if the file is missing so
// the caller surfaces the read failure instead of silently skipping it.
func resolveFilePath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range fileNames {
		if fileExists(name) {
			return name
		}
	}

	if dir, err := os.UserConfigDir(); err == nil {
		for _, name := range configDirNames {
			candidate := filepath.Join(dir, "fluxa", name)
			if fileExists(candidate) {
				return candidate
			}
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// readFile parses the config file at path into a raw nested mapping. The
// format is inferred from the extension. A missing file yields an empty
// mapping; a present but malformed file yields a *ParseError. Keys are
// normalized to lower case.
func readFile(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		// Fall back to YAML, which is a superset of JSON for our purposes.
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return lowerKeys(raw), nil
}

// lowerKeys normalizes every map key to lower case, recursively. File keys
// keep their spelling inside values; only the key path is normalized for
// comparison.
func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch nested := v.(type) {
		case map[string]any:
			out[strings.ToLower(k)] = lowerKeys(nested)
		case map[any]any:
			out[strings.ToLower(k)] = lowerKeys(stringKeys(nested))
		default:
			out[strings.ToLower(k)] = v
		}
	}
	return out
}

// stringKeys converts a YAML map with any-typed keys into a string-keyed one,
// dropping non-string keys.
func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if s, ok := k.(string); ok {
			out[s] = v
		}
	}
	return out
}

// readEnv scans environ for variables starting with prefix and converts each
// into a nested raw mapping entry. The first underscore after the prefix
// separates the section from the field, so FLUXA_LMSTUDIO_BASE_URL becomes
// lmstudio.base_url. Matching is case-insensitive; keys are normalized to
// lower case. Variables named in skip (already stripped of the prefix) are
// reserved for bootstrap and excluded from the scan.
func readEnv(prefix string, environ []string, skip ...string) map[string]any {
	out := make(map[string]any)

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}

		if !strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(prefix)) {
			continue
		}
		rest := name[len(prefix):]
		if rest == "" || isSkipped(rest, skip) {
			continue
		}

		section, field, ok := strings.Cut(rest, "_")
		var key string
		if ok && field != "" {
			key = strings.ToLower(section) + "." + strings.ToLower(field)
		} else {
			key = strings.ToLower(section)
		}
		putDotted(out, key, value)
	}

	return out
}

func isSkipped(name string, skip []string) bool {
	for _, s := range skip {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}
