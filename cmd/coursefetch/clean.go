package main

import (
	"fmt"

	"github.com/fwojciec/coursefetch"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	name := coursefetch.CleanFilename(c.Name)
	if c.Minimal {
		name = coursefetch.CleanFilenameMinimal(c.Name)
	}
	fmt.Fprintln(deps.Stdout, name)
	return nil
}

// Run executes the fixurl command.
func (c *FixURLCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, coursefetch.FixURL(c.URL))
	return nil
}
