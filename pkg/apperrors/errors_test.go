package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindCapacity, KindOf(Capacity("full")))
	assert.Equal(t, KindState, KindOf(State("already returned")))
	assert.Equal(t, KindStorage, KindOf(errors.New("plain error")))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("loading asset: %w", NotFound("asset 7 not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: Validation("bad"), expected: http.StatusBadRequest},
		{name: "not found", err: NotFound("missing"), expected: http.StatusNotFound},
		{name: "conflict", err: Conflict("dup"), expected: http.StatusConflict},
		{name: "capacity", err: Capacity("full"), expected: http.StatusConflict},
		{name: "state", err: State("done"), expected: http.StatusConflict},
		{name: "storage", err: Storage("db down", errors.New("dial tcp")), expected: http.StatusInternalServerError},
		{name: "uncategorized", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}

func TestWrapDBError(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(WrapDBError("assets: duplicate tag", "23505")))
	assert.Equal(t, KindValidation, KindOf(WrapDBError("assets: bad category", "23503")))
	assert.Equal(t, KindValidation, KindOf(WrapDBError("licenses: seats", "23514")))
	assert.Equal(t, KindStorage, KindOf(WrapDBError("assets: boom", "57014")))
}

func TestErrorMessage(t *testing.T) {
	plain := Validation("field %s is required", "name")
	assert.Equal(t, "field name is required", plain.Error())

	wrapped := Storage("query failed", errors.New("connection reset"))
	assert.Equal(t, "query failed: connection reset", wrapped.Error())
	assert.Equal(t, "connection reset", errors.Unwrap(wrapped).Error())
}
