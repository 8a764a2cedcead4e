package stream

import (
	"context"
	"fmt"
	"sync/atomic"

	fserrors "github.com/saketk/familystream/pkg/common/errors"
)

// ErrStreamClosed is returned when attempting to operate on a closed stream,
// or on a stream that an intermediate operation has already consumed.
// It wraps errors.ErrClosed.
var ErrStreamClosed = fmt.Errorf("stream: %w", fserrors.ErrClosed)

// Stream represents a sequence of elements supporting sequential operations.
// Streams are lazy; computation on the source data is only performed when a terminal
// operation is initiated, and source elements are pulled only as needed.
//
// A stream can be consumed once. Calling an intermediate operation hands the
// source over to the returned stream; calling a terminal operation drains and
// closes it.
type Stream[T any] interface {
	// Intermediate operations (lazy, return new Stream)

	// Filter returns a stream consisting of elements that match the given predicate.
	Filter(predicate func(T) bool) Stream[T]

	// Map returns a stream consisting of the results of applying the given function to elements.
	Map(mapper func(T) T) Stream[T]

	// FlatMap returns a stream consisting of results of replacing each element with
	// the contents of a mapped stream produced by applying the provided mapping function.
	FlatMap(mapper func(T) Stream[T]) Stream[T]

	// Distinct returns a stream consisting of distinct elements, keeping the first
	// occurrence. Elements are compared with ==, so pointer elements are distinct
	// by identity. T must be comparable at run time.
	Distinct() Stream[T]

	// DistinctBy returns a stream keeping the first element for each key.
	DistinctBy(key func(T) any) Stream[T]

	// Sorted returns a stream consisting of elements sorted by compare.
	// The sort is stable. compare should return negative if a < b, 0 if a == b, positive if a > b.
	Sorted(compare func(a, b T) int) Stream[T]

	// Skip returns a stream consisting of remaining elements after skipping n elements.
	Skip(n int64) Stream[T]

	// Limit returns a stream consisting of elements truncated to be no longer than maxSize.
	Limit(maxSize int64) Stream[T]

	// Peek returns a stream consisting of elements, additionally performing the provided
	// action on each element as elements are consumed.
	Peek(action func(T)) Stream[T]

	// Terminal operations (eager, consume the stream)

	// ForEach performs an action for each element of the stream.
	ForEach(ctx context.Context, action func(T)) error

	// Reduce performs a reduction on elements using the provided identity and combining function.
	Reduce(ctx context.Context, identity T, accumulator func(T, T) T) (T, error)

	// ReduceOptional performs a reduction without an identity. The boolean is
	// false when the stream was empty.
	ReduceOptional(ctx context.Context, accumulator func(T, T) T) (T, bool, error)

	// ToSlice returns a slice containing all elements in encounter order.
	ToSlice(ctx context.Context) ([]T, error)

	// Count returns the count of elements.
	Count(ctx context.Context) (int64, error)

	// AnyMatch returns whether any elements match the given predicate.
	AnyMatch(ctx context.Context, predicate func(T) bool) (bool, error)

	// AllMatch returns whether all elements match the given predicate.
	AllMatch(ctx context.Context, predicate func(T) bool) (bool, error)

	// NoneMatch returns whether no elements match the given predicate.
	NoneMatch(ctx context.Context, predicate func(T) bool) (bool, error)

	// FindFirst returns the first element, if present.
	FindFirst(ctx context.Context) (T, bool, error)

	// Min returns the minimum element according to the provided comparator.
	Min(ctx context.Context, compare func(a, b T) int) (T, bool, error)

	// Max returns the maximum element according to the provided comparator.
	Max(ctx context.Context, compare func(a, b T) int) (T, bool, error)

	// Stream control

	// Close closes the stream and releases resources.
	Close() error

	// IsClosed returns true if the stream is closed or already consumed.
	IsClosed() bool

	// link hands the source to a derived stream.
	link() (Source[T], error)
}

// Source represents a data source for streams.
type Source[T any] interface {
	// Next returns the next element and true, or zero value and false if no more elements.
	Next(ctx context.Context) (T, bool, error)
	// Close closes the source and releases resources.
	Close() error
}

const (
	stateOpen int32 = iota
	stateLinked
	stateClosed
)

// stream is the default implementation of Stream.
type stream[T any] struct {
	source Source[T]
	state  int32 // atomic
}

// New creates a new Stream from a Source.
func New[T any](source Source[T]) Stream[T] {
	return &stream[T]{source: source}
}

// FromSlice creates a Stream from a slice. The slice is read, never modified.
func FromSlice[T any](slice []T) Stream[T] {
	return New[T](&sliceSource[T]{slice: slice})
}

// Of creates a Stream from the given values.
func Of[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

// Generate creates an infinite Stream from a generator function.
func Generate[T any](generator func() T) Stream[T] {
	return New[T](&generatorSource[T]{generator: generator})
}

// Empty creates an empty Stream.
func Empty[T any]() Stream[T] {
	return New[T](&emptySource[T]{})
}

// Fail creates a Stream whose first pull returns err. It lets mapping
// functions passed to FlatMap report a failure.
func Fail[T any](err error) Stream[T] {
	return New[T](&failSource[T]{err: err})
}

func (s *stream[T]) link() (Source[T], error) {
	if !atomic.CompareAndSwapInt32(&s.state, stateOpen, stateLinked) {
		return nil, ErrStreamClosed
	}
	return s.source, nil
}

// derive wraps this stream's source in an operation source.
func (s *stream[T]) derive(wrap func(Source[T]) Source[T]) Stream[T] {
	return derive[T, T](s, wrap)
}

func derive[T, U any](s Stream[T], wrap func(Source[T]) Source[U]) Stream[U] {
	src, err := s.link()
	if err != nil {
		return Fail[U](err)
	}
	return New(wrap(src))
}

// Filter implementation
func (s *stream[T]) Filter(predicate func(T) bool) Stream[T] {
	return s.derive(func(src Source[T]) Source[T] {
		return &filterSource[T]{upstream: src, predicate: predicate}
	})
}

// Map implementation
func (s *stream[T]) Map(mapper func(T) T) Stream[T] {
	return s.derive(func(src Source[T]) Source[T] {
		return &mapSource[T, T]{upstream: src, mapper: mapper}
	})
}

// FlatMap implementation
func (s *stream[T]) FlatMap(mapper func(T) Stream[T]) Stream[T] {
	return s.derive(func(src Source[T]) Source[T] {
		return &flatMapSource[T, T]{upstream: src, mapper: mapper}
	})
}

// Distinct implementation
func (s *stream[T]) Distinct() Stream[T] {
	return s.DistinctBy(func(v T) any { return v })
}

// DistinctBy implementation
func (s *stream[T]) DistinctBy(key func(T) any) Stream[T] {
	return s.derive(func(src Source[T]) Source[T] {
		return &distinctSource[T]{upstream: src, key: key}
	})
}

// Sorted implementation
func (s *stream[T]) Sorted(compare func(a, b T) int) Stream[T] {
	return s.derive(func(src Source[T]) Source[T] {
		return &sortedSource[T]{upstream: src, compare: compare}
	})
}

// Skip implementation
func (s *stream[T]) Skip(n int64) Stream[T] {
	return s.derive(func(src Source[T]) Source[T] {
		return &skipSource[T]{upstream: src, count: n}
	})
}

// Limit implementation
func (s *stream[T]) Limit(maxSize int64) Stream[T] {
	return s.derive(func(src Source[T]) Source[T] {
		return &limitSource[T]{upstream: src, maxSize: maxSize}
	})
}

// Peek implementation
func (s *stream[T]) Peek(action func(T)) Stream[T] {
	return s.derive(func(src Source[T]) Source[T] {
		return &peekSource[T]{upstream: src, action: action}
	})
}

// each drains the stream, calling fn until it returns false.
func (s *stream[T]) each(ctx context.Context, fn func(T) bool) error {
	if !atomic.CompareAndSwapInt32(&s.state, stateOpen, stateClosed) {
		return ErrStreamClosed
	}
	return consume(ctx, s.source, func(v T) (bool, error) {
		return fn(v), nil
	})
}

// consume pulls from src until it is exhausted, fn stops, or ctx is done.
// The source is closed on return.
func consume[T any](ctx context.Context, src Source[T], fn func(T) (bool, error)) (err error) {
	defer func() {
		if cerr := src.Close(); err == nil {
			err = cerr
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		value, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		more, err := fn(value)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// ForEach implementation
func (s *stream[T]) ForEach(ctx context.Context, action func(T)) error {
	return s.each(ctx, func(v T) bool {
		action(v)
		return true
	})
}

// ToSlice implementation
func (s *stream[T]) ToSlice(ctx context.Context) ([]T, error) {
	result := make([]T, 0)
	err := s.each(ctx, func(v T) bool {
		result = append(result, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Count implementation
func (s *stream[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.each(ctx, func(T) bool {
		count++
		return true
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Reduce implementation
func (s *stream[T]) Reduce(ctx context.Context, identity T, accumulator func(T, T) T) (T, error) {
	result := identity
	err := s.each(ctx, func(v T) bool {
		result = accumulator(result, v)
		return true
	})
	if err != nil {
		return identity, err
	}
	return result, nil
}

// ReduceOptional implementation
func (s *stream[T]) ReduceOptional(ctx context.Context, accumulator func(T, T) T) (T, bool, error) {
	return TryReduce[T](ctx, s, func(a, b T) (T, error) {
		return accumulator(a, b), nil
	})
}

// FindFirst implementation
func (s *stream[T]) FindFirst(ctx context.Context) (T, bool, error) {
	var first T
	found := false
	err := s.each(ctx, func(v T) bool {
		first, found = v, true
		return false
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return first, found, nil
}

// AnyMatch implementation
func (s *stream[T]) AnyMatch(ctx context.Context, predicate func(T) bool) (bool, error) {
	matched := false
	err := s.each(ctx, func(v T) bool {
		matched = predicate(v)
		return !matched
	})
	if err != nil {
		return false, err
	}
	return matched, nil
}

// AllMatch implementation
func (s *stream[T]) AllMatch(ctx context.Context, predicate func(T) bool) (bool, error) {
	all := true
	err := s.each(ctx, func(v T) bool {
		all = predicate(v)
		return all
	})
	if err != nil {
		return false, err
	}
	return all, nil
}

// NoneMatch implementation
func (s *stream[T]) NoneMatch(ctx context.Context, predicate func(T) bool) (bool, error) {
	result, err := s.AnyMatch(ctx, predicate)
	if err != nil {
		return false, err
	}
	return !result, nil
}

// Min implementation
func (s *stream[T]) Min(ctx context.Context, compare func(a, b T) int) (T, bool, error) {
	return s.ReduceOptional(ctx, func(a, b T) T {
		if compare(b, a) < 0 {
			return b
		}
		return a
	})
}

// Max implementation
func (s *stream[T]) Max(ctx context.Context, compare func(a, b T) int) (T, bool, error) {
	return s.ReduceOptional(ctx, func(a, b T) T {
		if compare(b, a) > 0 {
			return b
		}
		return a
	})
}

// Close implementation
func (s *stream[T]) Close() error {
	if !atomic.CompareAndSwapInt32(&s.state, stateOpen, stateClosed) {
		return nil // Already closed or handed to a derived stream
	}
	if s.source != nil {
		return s.source.Close()
	}
	return nil
}

// IsClosed implementation
func (s *stream[T]) IsClosed() bool {
	return atomic.LoadInt32(&s.state) != stateOpen
}
