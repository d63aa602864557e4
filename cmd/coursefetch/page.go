package main

import (
	"io"
	"os"

	"github.com/fwojciec/coursefetch"
)

// readPage extracts supplements from the file at path, or from stdin when
// path is "-". The encoding is sniffed from the page itself.
func readPage(deps *Dependencies, path string) (coursefetch.SupplementLinks, error) {
	var r io.Reader = deps.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, coursefetch.Errorf(coursefetch.ENOTFOUND, "cannot open page %q: %v", path, err)
		}
		defer f.Close()
		r = f
	}
	return deps.Extractor.ExtractSupplementsFromReader(r, "")
}
