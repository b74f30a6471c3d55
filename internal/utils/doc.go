// Package utils provides shared utility functions for the Pūnga application.
//
// # System Utilities
//
// Functions for interacting with the operating system:
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
package utils
