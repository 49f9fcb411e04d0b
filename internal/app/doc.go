// Package app contains the core application logic. It defines the App
// struct, its configuration and the solve lifecycle, decoupled from the
// command-line entrypoints.
package app
