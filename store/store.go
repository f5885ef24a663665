// path: store/store.go
package store

import (
	"errors"

	"pestreport/models"
)

// ErrCorrupt marks a store whose backing content is present but not decodable.
// Callers turn it into a "data unavailable" message instead of crashing.
var ErrCorrupt = errors.New("corrupt submissions data")

// Store abstracts persistence of submissions so the report builder does not
// care whether a flat file or a database sits underneath.
type Store interface {
	Append(rec models.Submission) error
	ReadAll() ([]models.Submission, error)
	ReplaceAll(recs []models.Submission) error
}
