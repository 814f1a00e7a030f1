// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the convert lifecycle (discover CMake files,
// parse, generate trees, encode), decoupled from any specific entrypoint
// like a CLI.
package app
