package main

import (
	"fmt"

	"github.com/fwojciec/coursefetch"
)

// Run executes the plan command.
func (c *PlanCmd) Run(deps *Dependencies) error {
	links, err := readPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursefetch.ErrorMessage(err))
		return err
	}

	targets, err := deps.Planner.Plan(deps.Ctx, links, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursefetch.ErrorMessage(err))
		return err
	}

	for _, t := range targets {
		fmt.Fprintf(deps.Stdout, "%s -> %s\n", t.URL, t.Path)
	}
	fmt.Fprintf(deps.Stdout, "Planned %d supplements\n", len(targets))

	return nil
}
