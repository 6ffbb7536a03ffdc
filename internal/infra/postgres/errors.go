package postgres

import (
	"log/slog"

	"staybook/internal/infra"
	"staybook/internal/pkg/pgconv"
)

// wrapErr classifies a driver error into a repository error kind.
func wrapErr(msg string, err error) error {
	kind := infra.KindDBFailure
	switch {
	case pgconv.IsNoRows(err):
		kind = infra.KindNotFound
	case pgconv.ErrorCode(err) == pgconv.CodeUniqueViolation:
		kind = infra.KindDuplicateKey
	case pgconv.ErrorCode(err) == pgconv.CodeExclusionViolation:
		kind = infra.KindConflict
	case pgconv.ErrorCode(err) == pgconv.CodeForeignKeyViolation:
		kind = infra.KindForeignKeyViolated
	}
	return infra.WrapRepoErr(slog.Default(), kind, msg, err)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}
