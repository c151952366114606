// Package config provides configuration loading, merging, and validation
// facilities for worldsync.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON or TOML config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the syncd daemon and
// [GetClientConfig] for syncctl.
package config
