package writer_test

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/saketk/familystream/pkg/streaming/writer"
)

// Example writes result lines to standard output.
func Example() {
	w := writer.New(os.Stdout)
	defer func() { _ = w.Close() }()

	_ = w.WriteLine("Name : Komal")
	_ = w.WriteLine("Name : Mummy")

	// Output:
	// Name : Komal
	// Name : Mummy
}

// Example_prefix shows a configured writer over a buffered destination.
func Example_prefix() {
	bw := bufio.NewWriter(os.Stdout)
	w := writer.NewWithConfig(bw, writer.Config{Prefix: "- ", MaxRetries: 1})

	_ = w.WriteLine("Red")
	_ = w.WriteLine("Blue")
	_ = w.Close() // flushes bw

	fmt.Println(w.Stats().LinesWritten)
	// Output:
	// - Red
	// - Blue
	// 2
}

// ExampleNewLogWriter sends lines to a structured logger.
func ExampleNewLogWriter() {
	logger := zerolog.New(os.Stdout)
	w := writer.NewLogWriter(logger)

	_ = w.WriteLine("Family member name Aniket")
	// Output: {"level":"info","message":"Family member name Aniket"}
}
