package main

import (
	"bufio"
	"io"
	"strings"
)

// readExprs reads expressions from r. If lines is true, each non-blank line is
// an expression. Otherwise the entire input, less trailing newlines, is a
// single expression.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimRight(string(b), "\r\n")}, nil
	}
	var srcs []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		s := strings.TrimSuffix(scan.Text(), "\r")
		if strings.TrimSpace(s) == "" {
			continue
		}
		srcs = append(srcs, s)
	}
	return srcs, scan.Err()
}
