package stream

import (
	"context"
	"errors"
	"slices"
)

// filterSource yields upstream elements that match a predicate.
type filterSource[T any] struct {
	upstream  Source[T]
	predicate func(T) bool
}

func (f *filterSource[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		value, ok, err := f.upstream.Next(ctx)
		if err != nil || !ok {
			return value, false, err
		}
		if f.predicate(value) {
			return value, true, nil
		}
	}
}

func (f *filterSource[T]) Close() error {
	return f.upstream.Close()
}

// mapSource transforms elements using a mapper function.
type mapSource[T, U any] struct {
	upstream Source[T]
	mapper   func(T) U
}

func (m *mapSource[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U

	value, ok, err := m.upstream.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	return m.mapper(value), true, nil
}

func (m *mapSource[T, U]) Close() error {
	return m.upstream.Close()
}

// flatMapSource flattens the stream produced for each upstream element, in
// upstream order.
type flatMapSource[T, U any] struct {
	upstream Source[T]
	mapper   func(T) Stream[U]
	current  Source[U]
}

func (f *flatMapSource[T, U]) Next(ctx context.Context) (U, bool, error) {
	var zero U

	for {
		if f.current != nil {
			value, ok, err := f.current.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if ok {
				return value, true, nil
			}
			if err := f.closeCurrent(); err != nil {
				return zero, false, err
			}
		}

		value, ok, err := f.upstream.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		inner, err := f.mapper(value).link()
		if err != nil {
			return zero, false, err
		}
		f.current = inner
	}
}

func (f *flatMapSource[T, U]) closeCurrent() error {
	err := f.current.Close()
	f.current = nil
	return err
}

func (f *flatMapSource[T, U]) Close() error {
	var innerErr error
	if f.current != nil {
		innerErr = f.closeCurrent()
	}
	return errors.Join(innerErr, f.upstream.Close())
}

// distinctSource drops elements whose key was already seen.
type distinctSource[T any] struct {
	upstream Source[T]
	key      func(T) any
	seen     map[any]struct{}
}

func (d *distinctSource[T]) Next(ctx context.Context) (T, bool, error) {
	if d.seen == nil {
		d.seen = make(map[any]struct{})
	}

	for {
		value, ok, err := d.upstream.Next(ctx)
		if err != nil || !ok {
			return value, false, err
		}

		k := d.key(value)
		if _, dup := d.seen[k]; dup {
			continue
		}
		d.seen[k] = struct{}{}
		return value, true, nil
	}
}

func (d *distinctSource[T]) Close() error {
	return d.upstream.Close()
}

// sortedSource sorts all elements (requires collecting all elements first).
type sortedSource[T any] struct {
	upstream Source[T]
	compare  func(a, b T) int
	elements []T
	index    int
	loaded   bool
}

func (s *sortedSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if !s.loaded {
		for {
			value, ok, err := s.upstream.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				break
			}
			s.elements = append(s.elements, value)
		}
		slices.SortStableFunc(s.elements, s.compare)
		s.loaded = true
	}

	if s.index >= len(s.elements) {
		return zero, false, nil
	}
	s.index++
	return s.elements[s.index-1], true, nil
}

func (s *sortedSource[T]) Close() error {
	return s.upstream.Close()
}

// skipSource skips the first n elements.
type skipSource[T any] struct {
	upstream Source[T]
	count    int64
	skipped  int64
}

func (s *skipSource[T]) Next(ctx context.Context) (T, bool, error) {
	for s.skipped < s.count {
		value, ok, err := s.upstream.Next(ctx)
		if err != nil || !ok {
			return value, false, err
		}
		s.skipped++
	}
	return s.upstream.Next(ctx)
}

func (s *skipSource[T]) Close() error {
	return s.upstream.Close()
}

// limitSource limits the number of elements. It stops pulling once the limit
// is reached, so it terminates infinite sources.
type limitSource[T any] struct {
	upstream Source[T]
	maxSize  int64
	count    int64
}

func (l *limitSource[T]) Next(ctx context.Context) (T, bool, error) {
	if l.count >= l.maxSize {
		var zero T
		return zero, false, nil
	}

	value, ok, err := l.upstream.Next(ctx)
	if err != nil || !ok {
		return value, false, err
	}
	l.count++
	return value, true, nil
}

func (l *limitSource[T]) Close() error {
	return l.upstream.Close()
}

// peekSource performs an action on each element without modifying the stream.
type peekSource[T any] struct {
	upstream Source[T]
	action   func(T)
}

func (p *peekSource[T]) Next(ctx context.Context) (T, bool, error) {
	value, ok, err := p.upstream.Next(ctx)
	if err != nil || !ok {
		return value, false, err
	}
	p.action(value)
	return value, true, nil
}

func (p *peekSource[T]) Close() error {
	return p.upstream.Close()
}
