package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows must be recognized")
	}
	if !isNotFound(fmt.Errorf("get user: %w", sql.ErrNoRows)) {
		t.Fatal("wrapped sql.ErrNoRows must be recognized")
	}
	if isNotFound(errors.New("connection refused")) {
		t.Fatal("unrelated errors must not be recognized")
	}
	if isNotFound(nil) {
		t.Fatal("nil must not be recognized")
	}
}
