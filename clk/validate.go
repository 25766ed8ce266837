package clk

import (
	"fmt"
	"strings"
)

// ValidationError is one construction-time problem with a clock.
type ValidationError struct {
	Clock   string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	if e.Clock == "" {
		return e.Message
	}
	return fmt.Sprintf("clock %s: %s", e.Clock, e.Message)
}

func (e ValidationError) Unwrap() error { return e.Err }

// ValidationErrors lets a Validate result be returned as a single error.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	s := make([]string, len(es))
	for i, e := range es {
		s[i] = e.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(es), strings.Join(s, "; "))
}

// Validate checks a fully built graph: every parent any clock can select
// exists, no clock is its own ancestor, and every PLL's rate table was
// computed for the reference it's actually fed. An empty result means the
// graph is sound. Validate only reads registers.
func Validate(g *Graph) ValidationErrors {
	var errs ValidationErrors
	errs = append(errs, validateReferences(g)...)
	errs = append(errs, validateDAG(g)...)
	errs = append(errs, validateReferenceRates(g)...)
	return errs
}

func validateReferences(g *Graph) []ValidationError {
	var errs []ValidationError
	for _, n := range g.order {
		for _, p := range g.clocks[n].Parents() {
			if !g.exists(p) {
				errs = append(errs, ValidationError{
					Clock:   n,
					Message: fmt.Sprintf("parent %q does not exist", p),
					Err:     ErrUnknownClock,
				})
			}
		}
	}
	return errs
}

// validateDAG checks for cycles using DFS with 3-colour marking over every
// candidate parent, so no mux setting can close a loop.
func validateDAG(g *Graph) []ValidationError {
	const (
		white = iota
		grey
		black
	)
	colour := make(map[string]int)
	var errs []ValidationError

	var visit func(n string) bool
	visit = func(n string) bool {
		switch colour[n] {
		case black:
			return false
		case grey:
			errs = append(errs, ValidationError{
				Clock:   n,
				Message: "is its own ancestor",
				Err:     ErrCycleDetected,
			})
			return true
		}
		colour[n] = grey
		c, ok := g.clocks[n]
		if !ok {
			// Inputs, or dangling references which validateReferences reports
			colour[n] = black
			return false
		}
		for _, p := range c.Parents() {
			if visit(p) {
				return true
			}
		}
		colour[n] = black
		return false
	}

	for _, n := range g.order {
		if colour[n] == white && visit(n) {
			break
		}
	}
	return errs
}

func validateReferenceRates(g *Graph) []ValidationError {
	var errs []ValidationError
	for _, n := range g.order {
		p, ok := g.clocks[n].(*PLL)
		if !ok || p.table == nil {
			continue
		}
		fin, err := g.Rate(p.parent)
		if err != nil {
			// Already reported as a reference or cycle problem
			continue
		}
		if fin != p.table.Fin {
			errs = append(errs, ValidationError{
				Clock:   n,
				Message: fmt.Sprintf("rate table is for %d Hz, reference %s runs at %d Hz", p.table.Fin, p.parent, fin),
				Err:     ErrInvalidRate,
			})
		}
	}
	return errs
}
