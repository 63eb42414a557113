// Package config provides configuration loading, merging, and validation
// for the conf server and the conf CLI.
//
// Server configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging. The main entry points are
// [GetStructuredConfig] for the server and [GetCLIConfig] for the CLI.
package config
