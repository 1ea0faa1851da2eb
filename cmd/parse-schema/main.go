package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gluefinance/parse-schema/internal/cli"
	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(parseschema.ExitPanic)
		}
	}()

	if os.Getenv("PARSE_SCHEMA_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(parseschema.ExitCodeForError(err))
	}
}
