package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates "Processing..." on a terminal until stopped.
type spinner struct {
	out  io.Writer
	stop chan struct{}
	wg   sync.WaitGroup
}

// startSpinner starts a spinner on stderr, or returns nil when stderr is not
// a terminal.
func startSpinner() *spinner {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}

	s := &spinner{out: os.Stderr, stop: make(chan struct{})}
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *spinner) loop() {
	defer s.wg.Done()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(s.out, "\rProcessing... %s", spinnerFrames[i%len(spinnerFrames)])
		select {
		case <-s.stop:
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// Stop clears the spinner line. It is safe on a nil spinner.
func (s *spinner) Stop() {
	if s == nil {
		return
	}
	close(s.stop)
	s.wg.Wait()
}
