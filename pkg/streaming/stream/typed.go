package stream

import (
	"context"
	"strings"
)

// MapTo transforms elements to a different type and returns a new typed stream.
func MapTo[T, U any](s Stream[T], mapper func(T) U) Stream[U] {
	return derive(s, func(src Source[T]) Source[U] {
		return &mapSource[T, U]{upstream: src, mapper: mapper}
	})
}

// FlatMapTo replaces each element with the contents of the stream mapper
// returns for it. Inner streams are drained one after another, so the output
// keeps upstream order and each inner stream's order.
func FlatMapTo[T, U any](s Stream[T], mapper func(T) Stream[U]) Stream[U] {
	return derive(s, func(src Source[T]) Source[U] {
		return &flatMapSource[T, U]{upstream: src, mapper: mapper}
	})
}

// TryReduce folds the stream with a fallible accumulator. The boolean is false
// when the stream was empty. The first accumulator error stops the fold.
func TryReduce[T any](ctx context.Context, s Stream[T], accumulator func(T, T) (T, error)) (T, bool, error) {
	var zero T

	src, err := s.link()
	if err != nil {
		return zero, false, err
	}

	var result T
	found := false
	err = consume(ctx, src, func(v T) (bool, error) {
		if !found {
			result, found = v, true
			return true, nil
		}
		next, err := accumulator(result, v)
		if err != nil {
			return false, err
		}
		result = next
		return true, nil
	})
	if err != nil {
		return zero, false, err
	}
	return result, found, nil
}

// Collector describes a mutable reduction: Supplier creates the container,
// Accumulator folds one element into it and Finisher converts it to the result.
type Collector[T, A, R any] struct {
	Supplier    func() A
	Accumulator func(A, T) A
	Finisher    func(A) R
}

// Collect performs a mutable reduction operation on elements.
func Collect[T, A, R any](ctx context.Context, s Stream[T], c Collector[T, A, R]) (R, error) {
	var zero R

	src, err := s.link()
	if err != nil {
		return zero, err
	}

	acc := c.Supplier()
	err = consume(ctx, src, func(v T) (bool, error) {
		acc = c.Accumulator(acc, v)
		return true, nil
	})
	if err != nil {
		return zero, err
	}
	return c.Finisher(acc), nil
}

// ToList collects elements into a slice in encounter order.
func ToList[T any]() Collector[T, []T, []T] {
	return Collector[T, []T, []T]{
		Supplier:    func() []T { return make([]T, 0) },
		Accumulator: func(acc []T, v T) []T { return append(acc, v) },
		Finisher:    func(acc []T) []T { return acc },
	}
}

// Joining concatenates string elements separated by sep.
func Joining(sep string) Collector[string, []string, string] {
	return Collector[string, []string, string]{
		Supplier:    func() []string { return nil },
		Accumulator: func(acc []string, v string) []string { return append(acc, v) },
		Finisher:    func(acc []string) string { return strings.Join(acc, sep) },
	}
}

// Counting counts elements.
func Counting[T any]() Collector[T, int64, int64] {
	return Collector[T, int64, int64]{
		Supplier:    func() int64 { return 0 },
		Accumulator: func(acc int64, _ T) int64 { return acc + 1 },
		Finisher:    func(acc int64) int64 { return acc },
	}
}
