package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("Duplicate key detection", func(t *testing.T) {
		testCases := []struct {
			name     string
			err      error
			expected bool
		}{
			{"Postgres duplicate key", errors.New(`duplicate key value violates unique constraint "idx_reference_direction"`), true},
			{"SQLite unique constraint", errors.New("UNIQUE constraint failed: transactions.reference"), true},
			{"Unrelated error", errors.New("relation does not exist"), false},
			{"Nil error", nil, false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, classifier.IsDuplicateKeyError(tc.err))
			})
		}
	})

	t.Run("Connection error detection", func(t *testing.T) {
		testCases := []struct {
			name     string
			err      error
			expected bool
		}{
			{"Dial failure", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true},
			{"Broken pipe", errors.New("write: broken pipe"), true},
			{"Timeout", errors.New("context deadline exceeded: timeout"), true},
			{"EOF", errors.New("unexpected EOF"), true},
			{"Constraint violation", errors.New("duplicate key value"), false},
			{"Nil error", nil, false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, classifier.IsConnectionError(tc.err))
			})
		}
	})
}
