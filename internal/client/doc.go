// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements syncctl, the command-line client of the syncd
// control API.
//
// Each subcommand parses its own pflag set, calls one [adapter.ControlAdapter]
// method and prints the result as indented JSON on the configured writer.
// Synchronizers are named on the command line by their broker address in
// host:port form.
package client
