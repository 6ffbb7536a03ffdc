package review

import (
	"strings"
	"unicode/utf8"

	"staybook/internal/pkg/errs"
)

// Bounds on a single review. MaxCommentLength counts characters, not bytes.
const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

var (
	ErrInvalidRating   = errs.NewKind("rating must be between 1 and 5", errs.ErrInvalidInput)
	ErrEmptyComment    = errs.NewKind("comment cannot be empty", errs.ErrInvalidInput)
	ErrCommentTooLong  = errs.NewKind("comment exceeds maximum length", errs.ErrInvalidInput)
	ErrCommentEncoding = errs.NewKind("comment must be valid UTF-8", errs.ErrInvalidInput)
)

// Rating is a whole number of stars.
type Rating struct{ stars int }

func NewRating(stars int) (Rating, error) {
	if stars < MinRating || stars > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{stars: stars}, nil
}

func (r Rating) Value() int { return r.stars }

type Comment struct{ body string }

// NewComment trims surrounding whitespace before checking the length.
func NewComment(raw string) (Comment, error) {
	if !utf8.ValidString(raw) {
		return Comment{}, ErrCommentEncoding
	}
	body := strings.TrimSpace(raw)
	switch n := utf8.RuneCountInString(body); {
	case n == 0:
		return Comment{}, ErrEmptyComment
	case n > MaxCommentLength:
		return Comment{}, ErrCommentTooLong
	}
	return Comment{body: body}, nil
}

func (c Comment) String() string { return c.body }
