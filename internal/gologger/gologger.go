// Package gologger wires the engine and its surrounding commands to a
// single logr.Logger, backed by stdr so the process needs no logging
// framework beyond what the stdlib "log" package already gives it.
package gologger

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New builds a logr.Logger that writes to stderr with the given name,
// verbosity controlling which V(n) calls are emitted.
func New(name string, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	std := log.New(os.Stderr, "", log.LstdFlags)
	return stdr.New(std).WithName(name)
}

// Discard returns a logger that drops everything, for tests that don't
// want log noise.
func Discard() logr.Logger {
	return logr.Discard()
}
