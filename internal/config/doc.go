// Package config provides configuration loading, merging, and validation
// for the consumer process and its operator CLI.
//
// Configuration is assembled from multiple sources in the following order;
// fields already set by an earlier source are kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
