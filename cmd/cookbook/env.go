package main

import (
	"io"
	"net/http"
	"os"
	"os/exec"
	"time"

	cookbook "github.com/senz/cookbook"
)

// Environment holds injectable dependencies for testability: I/O, time,
// subprocess execution, PATH lookup, and HTTP.
type Environment struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	Runner   cookbook.CommandRunner
	LookPath func(name string) (string, error)
	Client   *http.Client
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Runner:   &cookbook.ExecRunner{},
		LookPath: exec.LookPath,
		Client:   http.DefaultClient,
	}
}
