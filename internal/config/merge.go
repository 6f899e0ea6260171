// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import (
	"fmt"

	"dario.cat/mergo"
)

// mergeSources deep-merges the three raw mappings in precedence order:
// Environment > File > Defaults. Nested mappings merge recursively, so a
// file overriding one nested field does not erase sibling fields from the
// defaults. Scalars and sequences are replaced wholesale by the
// higher-precedence source.
//
// Only WithOverride is used. WithOverwriteWithEmptyValue must not be added
// here: it makes mergo replace nested maps wholesale, so a source setting
// one nested field would erase its siblings from lower-precedence sources.
func mergeSources(defaults, file, env map[string]any) (map[string]any, error) {
	combined := make(map[string]any)
	for _, src := range []map[string]any{defaults, file, env} {
		if len(src) == 0 {
			continue
		}
		if err := mergo.Merge(&combined, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging config sources: %w", err)
		}
	}
	return combined, nil
}

// flatten converts a nested raw mapping into dotted leaf keys. Sequences and
// scalars are leaves; mappings are branches.
func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}
