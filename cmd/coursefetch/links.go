package main

import (
	"fmt"

	"github.com/fwojciec/coursefetch"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	links, err := readPage(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursefetch.ErrorMessage(err))
		return err
	}

	if links.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No supplement links found.")
		return nil
	}

	base := coursefetch.FixURL(c.Base)
	for _, ext := range links.Extensions() {
		for _, s := range links[ext] {
			link := s.URL
			if c.Absolute {
				link, err = resolveLink(base, s.URL)
				if err != nil {
					fmt.Fprintf(deps.Stderr, "skip %s: %s\n", s.URL, coursefetch.ErrorMessage(err))
					continue
				}
			}

			line := ext + "\t" + link + "\t" + s.Basename
			if c.Format {
				format, ok := coursefetch.AnchorFormat(s.URL)
				if !ok {
					format = "-"
				}
				line += "\t" + format
			}
			fmt.Fprintln(deps.Stdout, line)
		}
	}

	return nil
}

func resolveLink(base, link string) (string, error) {
	if base == "" {
		return coursefetch.AbsoluteURL(link)
	}
	return coursefetch.ResolveURL(base, link)
}
