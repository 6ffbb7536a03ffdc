// Package errs is a thin layer over cockroachdb/errors that adds the four
// outcome kinds every command and query reports failures with.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Outcome kinds. Sentinels are marked with one of these so the transport maps
// them without knowing each individual error.
var (
	ErrInvalidInput = cr.New("invalid input")
	ErrConflict     = cr.New("conflict")
	ErrForbidden    = cr.New("forbidden")
	ErrNotFound     = cr.New("not found")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidInput, "invalid_input"},
	{ErrConflict, "conflict"},
	{ErrForbidden, "forbidden"},
	{ErrNotFound, "not_found"},
}

func New(msg string) error { return cr.New(msg) }

// NewKind creates a sentinel already marked with an outcome kind.
func NewKind(msg string, kind error) error { return cr.Mark(cr.New(msg), kind) }

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark returns mark itself when err is nil.
func Mark(err, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

func Is(err, reference error) bool { return cr.Is(err, reference) }

// Kind returns the outcome kind err was marked with, or nil for an unclassified failure.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if cr.Is(err, k.err) {
			return k.err
		}
	}
	return nil
}

// KindName is Kind as a metric/log label; unclassified failures are "internal".
func KindName(err error) string {
	k := Kind(err)
	for _, kk := range kinds {
		if kk.err == k {
			return kk.name
		}
	}
	return "internal"
}

// ExtractStackLines renders err with its stack trace and keeps the first maxLines
// lines (all of them when maxLines <= 0).
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
