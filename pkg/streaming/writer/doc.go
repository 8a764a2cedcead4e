/*
Package writer provides line sinks for pipeline output.

A LineWriter receives one line of text per emitted result, such as a member
name, a quantifier sentence or a reduced sum.

# Quick Start

	w := writer.New(os.Stdout)
	defer w.Close()

	w.WriteLine("Name : Komal")

# Configuration

	config := writer.Config{
		Prefix:     "> ",                  // Prepended to every line
		MaxRetries: 3,                     // Retry failed or short writes
		RetryDelay: 10 * time.Millisecond, // Pause between retries
		OnError:    func(err error) { log.Print(err) },
	}

	w := writer.NewWithConfig(underlyingWriter, config)

A write that comes back short is resumed from where it stopped, so a line is
never duplicated. If the destination has a Flush method (bufio.Writer does),
Flush and Close call it.

# Logging Sink

NewLogWriter sends each line to a zerolog.Logger as the message of an info
event, for runs where results should land in the structured log.

# Statistics

	stats := w.Stats()
	fmt.Printf("Lines: %d, Bytes: %d, Errors: %d\n",
		stats.LinesWritten, stats.BytesWritten, stats.ErrorCount)

# Thread Safety

All LineWriter methods are safe for concurrent use.
*/
package writer
