// Package encoding implements a line-oriented polynomial-equation text
// format, adapted from the teacher's encoding.ParseDimacs (a
// bufio.Scanner plus bytes.Fields line parser) from DIMACS integer
// clauses to named polynomial terms.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Equation is one parsed "sum of monomials = 0" line. Monomials[i] is
// the variable names multiplied together in the i'th term; a nil entry
// denotes the constant monomial 1 (poly.Poly.String()'s own rendering
// of the empty monomial, so a Poly.String() rendering parses back
// through Parse; a full engine.Display line, with its "[state]" prefix,
// "= 0" and dependency suffix, does not).
type Equation struct {
	Monomials [][]string
}

// Parse reads one equation per non-comment, non-blank line: monomials
// separated by "+", variable names within a monomial separated by "*".
// Lines whose first non-space byte is "#" are comments and skipped,
// mirroring the teacher's "c"/"p" DIMACS line skip.
func Parse(in io.Reader) ([]Equation, error) {
	scanner := bufio.NewScanner(in)
	var out []Equation
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		eq, err := parseLine(string(line))
		if err != nil {
			return nil, fmt.Errorf("encoding: line %d: %w", lineNo, err)
		}
		out = append(out, eq)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("encoding: %w", err)
	}
	return out, nil
}

func parseLine(line string) (Equation, error) {
	var eq Equation
	for _, term := range strings.Split(line, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			return Equation{}, fmt.Errorf("empty term")
		}
		if term == "1" {
			eq.Monomials = append(eq.Monomials, nil)
			continue
		}
		var vars []string
		for _, v := range strings.Split(term, "*") {
			v = strings.TrimSpace(v)
			if v == "" {
				return Equation{}, fmt.Errorf("empty variable name in term %q", term)
			}
			vars = append(vars, v)
		}
		eq.Monomials = append(eq.Monomials, vars)
	}
	return eq, nil
}
