// Package logs reads the tail of the persistent curator log file with
// bounded memory. It backs `curator logs`.
package logs
