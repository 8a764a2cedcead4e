/*
Package streaming groups the sequence and output building blocks used by
familystream.

  - stream: lazy, single-use, pull-based streams with filter, map, flat-map,
    match, reduce and collect operations
  - writer: line sinks that write one result per line to an io.Writer or a
    zerolog.Logger

Basic usage:

	names, err := stream.MapTo(stream.FromSlice(members), nameOf).ToSlice(ctx)
	if err != nil {
		return err
	}

	w := writer.New(os.Stdout)
	defer w.Close()
	for _, n := range names {
		w.WriteLine(n)
	}

Everything runs on the caller's goroutine and honours context cancellation.
*/
package streaming
