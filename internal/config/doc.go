// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from three sources in fixed precedence order
// (higher wins):
//  1. Environment variables (FLUXA_<SECTION>_<FIELD>)
//  2. Optional config file (fluxa.yaml / fluxa.json / fluxa.toml)
//  3. Built-in schema defaults
//
// Raw values from all sources are deep-merged, validated against the declared
// [Schema] (type coercion plus constraint checks, unknown keys rejected), and
// frozen into an immutable [Resolved] view. The main entry point is [Get],
// which builds the configuration once per process and memoizes it; [Reset]
// discards the cached instance for test isolation.
package config
