package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
)

// handleInterrupt installs the process-wide Ctrl-C handler. On interrupt it
// writes a notice to w and calls exit with status 0, whatever is in flight.
// The returned function uninstalls the handler.
func handleInterrupt(w io.Writer, exit func(int)) (stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	done := make(chan struct{})
	go func() {
		select {
		case <-c:
			fmt.Fprint(w, "\nUser terminated the application.\n")
			exit(0)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(c)
		close(done)
	}
}
