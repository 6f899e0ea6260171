// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

// Package client implements the interactive assistant application runtime.
//
// It wires configuration, the SQLite memory store, the LLM client, the agent
// and the terminal chat UI into a single process lifecycle.
package client
