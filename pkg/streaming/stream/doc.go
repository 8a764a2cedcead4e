/*
Package stream provides a lazy, pull-based API for processing sequences of data in Go.

The API follows Java 8 Streams: a chain of intermediate operations is built
first and nothing runs until a terminal operation pulls elements through it.
Every pull happens on the caller's goroutine, one element at a time, so a
stream never starts goroutines and never reorders elements.

Core Concepts:

  - Lazy: computation is only performed when a terminal operation is initiated
  - Single use: an intermediate operation takes over its parent's source, and a
    terminal operation drains and closes it; reusing either returns ErrStreamClosed
  - Context-aware: terminal operations check the context between elements
  - Short-circuiting: AnyMatch, AllMatch, NoneMatch, FindFirst and Limit stop
    pulling as soon as the answer is known

Basic Usage:

	result, err := stream.FromSlice([]int{1, 2, 3, 4, 5}).
		Filter(func(x int) bool { return x%2 == 0 }).
		Map(func(x int) int { return x * 2 }).
		ToSlice(ctx)
	// result: [4 8]

Stream Creation:

	stream.FromSlice([]string{"a", "b", "c"})
	stream.Of(1, 2, 3)
	stream.Generate(func() int { n++; return n }) // infinite, pair with Limit
	stream.Empty[int]()
	stream.Fail[int](err) // first pull returns err

Intermediate Operations:

	s.Filter(func(x int) bool { return x > 0 })
	s.Map(func(x int) int { return x * 2 })
	s.FlatMap(func(x int) Stream[int] { return stream.Of(x, x) })
	s.Distinct()                 // == comparison; pointers compare by identity
	s.DistinctBy(func(p *Person) any { return p.Name })
	s.Sorted(cmp.Compare[int])   // stable
	s.Skip(5)
	s.Limit(10)
	s.Peek(func(x int) { log.Printf("Processing: %d", x) })

Methods cannot introduce type parameters, so type-changing operations are
package functions:

	names := stream.MapTo(people, func(p *Person) string { return p.Name })
	colors := stream.FlatMapTo(people, func(p *Person) Stream[string] {
		return stream.FromSlice(p.Colors)
	})

Terminal Operations:

	err := s.ForEach(ctx, func(x int) { fmt.Println(x) })
	sum, err := s.Reduce(ctx, 0, func(a, b int) int { return a + b })
	sum, ok, err := s.ReduceOptional(ctx, func(a, b int) int { return a + b })
	sum, ok, err := stream.TryReduce(ctx, s, checkedAdd)
	list, err := stream.Collect(ctx, s, stream.ToList[int]())
	slice, err := s.ToSlice(ctx)
	count, err := s.Count(ctx)
	first, found, err := s.FindFirst(ctx)
	hasAny, err := s.AnyMatch(ctx, predicate)  // false on empty
	hasAll, err := s.AllMatch(ctx, predicate)  // true on empty
	hasNone, err := s.NoneMatch(ctx, predicate) // true on empty
	min, found, err := s.Min(ctx, compare)

ReduceOptional, TryReduce, FindFirst, Min and Max report "no value" with a
false boolean instead of returning a zero value that looks like a result.

Error Handling:

Errors from sources, from Fail streams returned inside FlatMap, and from
TryReduce accumulators stop the pipeline and are returned by the terminal
operation unchanged:

	colors, err := stream.FlatMapTo(members, expand).ToSlice(ctx)
	if errors.Is(err, ErrMissing) {
		// an element had nothing to expand
	}

Thread Safety:

A stream is owned by one goroutine. Build a new stream per consumer:

	go process(stream.FromSlice(data).Filter(p1))
	go process(stream.FromSlice(data).Filter(p2))
*/
package stream
