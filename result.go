package foundation

import "fmt"

// Result holds either a value of type T or an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail creates a failed Result. A nil error is replaced by an error wrapping
// ErrInvalidArgument.
func Fail[V any](err error) Result[V] {
	if err == nil {
		err = fmt.Errorf("%w: result failed without an error", ErrInvalidArgument)
		T().Errorf("foundation: %v", err)
	}
	return Result[V]{err: err}
}

// ResultOf wraps the return values of a (value, error) function call.
func ResultOf[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

// IsOk reports whether r carries a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Err returns the error of a failed Result, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns value and error, Go style.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// ToOption drops the error of r.
func (r Result[T]) ToOption() Option[T] {
	return Maybe(r.value, r.err == nil)
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Error(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// MapResult applies fn to the value of a successful Result and passes errors
// through unchanged.
func MapResult[T, R any](r Result[T], fn func(T) R) Result[R] {
	if r.err != nil {
		return Result[R]{err: r.err}
	}
	return Ok(fn(r.value))
}
