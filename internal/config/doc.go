// Package config provides configuration loading, merging, and validation
// for the configuration service.
//
// Configuration is assembled from several sources; for every non-zero field
// the highest-precedence source wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
