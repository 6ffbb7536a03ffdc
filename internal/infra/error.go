package infra

import (
	"log/slog"

	cr "github.com/cockroachdb/errors"
)

// RepositoryErrorKind classifies a store failure independently of the driver,
// so postgres and mongo repositories report constraint hits the same way.
type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

// expected kinds are normal outcomes of a valid request and log at debug.
func (k RepositoryErrorKind) expected() bool {
	return k != KindDBFailure
}

type RepositoryError struct {
	Kind  RepositoryErrorKind
	Op    string
	cause error
}

func (e *RepositoryError) Error() string {
	s := string(e.Kind) + ": " + e.Op
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e *RepositoryError) Unwrap() error { return e.cause }

// WrapRepoErr tags err with kind and logs it. op names the repository call.
func WrapRepoErr(logger *slog.Logger, kind RepositoryErrorKind, op string, err error) error {
	attrs := []any{slog.String("kind", string(kind)), slog.String("op", op)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = cr.WithStack(err)
	}

	if kind.expected() {
		logger.Debug("repository outcome", attrs...)
	} else {
		logger.Error("repository failure", attrs...)
	}

	return &RepositoryError{Kind: kind, Op: op, cause: err}
}

// KindOf returns the kind of the outermost RepositoryError in err's chain, or "".
func KindOf(err error) RepositoryErrorKind {
	var re *RepositoryError
	if cr.As(err, &re) {
		return re.Kind
	}
	return ""
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
