package mongo

import (
	"errors"
	"log/slog"

	"staybook/internal/infra"

	"go.mongodb.org/mongo-driver/mongo"
)

const labelTransient = "TransientTransactionError"

func wrapErr(msg string, err error) error {
	kind := infra.KindDBFailure
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		kind = infra.KindNotFound
	case mongo.IsDuplicateKeyError(err):
		kind = infra.KindDuplicateKey
	case hasLabel(err, labelTransient):
		// write conflict with a concurrent transaction; the unit of work retries it
		kind = infra.KindConflict
	}
	return infra.WrapRepoErr(slog.Default(), kind, msg, err)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}

func hasLabel(err error, label string) bool {
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorLabel(label)
	}
	return false
}
