package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores terminal state; tcell screens satisfy it
type Finalizer interface {
	Fini()
}

// Fallback sequences when no terminal is registered: mouse off, cursor on, main screen, attributes reset
const emergencyReset = "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l\x1b[?25h\x1b[?1049l\x1b[0m"

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer

	// Swapped in tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// RegisterTerminal sets the terminal restored on crash, nil clears it
func RegisterTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// EmergencyReset writes raw reset sequences for a terminal left in raw mode
func EmergencyReset(w io.Writer) {
	io.WriteString(w, emergencyReset)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	// Restore terminal to sane state immediately
	if term != nil {
		term.Fini()
	} else {
		EmergencyReset(os.Stdout)
	}
	os.Stdout.Sync()

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mSTRANDS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
