package mongodb

import (
	"regexp"
	"strings"

	"tourbook/internal/domain/repository"
	"tourbook/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// dupKeyPattern extracts the key document from an E11000 message, e.g.
// `E11000 duplicate key error collection: natours.users index: email_1 dup key: { email: "a@b.c" }`.
var dupKeyPattern = regexp.MustCompile(`dup key: \{ ?([^:]+): (.+?) ?\}`)

// mapError translates driver errors into repository errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return errors.WithStack(parseDuplicateKey(err.Error()))
	}

	return errors.WithStack(err)
}

func parseDuplicateKey(msg string) *repository.DuplicateKeyError {
	match := dupKeyPattern.FindStringSubmatch(msg)
	if match == nil {
		return &repository.DuplicateKeyError{Field: "unknown", Value: "unknown"}
	}

	field := strings.TrimSpace(match[1])
	value := strings.TrimSpace(match[2])
	// Compound keys render as "tour: ObjectId('...'), user: ObjectId('...')"; keep the first value.
	if i := strings.Index(value, ", "); i >= 0 && strings.Contains(value[i:], ": ") {
		value = value[:i]
	}
	value = strings.Trim(value, `"`)

	return &repository.DuplicateKeyError{Field: field, Value: value}
}
