package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return "code error" }

func TestAsType(t *testing.T) {
	err := Wrap(&codeError{code: 7}, "context")

	got, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	base := New("boom")
	err := Wrapf(WithStack(base), "loading %s", "tour")

	assert.True(t, Is(err, base))
	assert.Equal(t, base, Cause(err))
	assert.Equal(t, "loading tour: boom", err.Error())
}

func TestStackTrace(t *testing.T) {
	assert.Empty(t, StackTrace(nil))

	trace := StackTrace(Errorf("failed at %d", 3))
	assert.Contains(t, trace, "failed at 3")
	assert.Contains(t, trace, "TestStackTrace")
}
