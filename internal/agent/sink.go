package agent

import "io"

// ConsoleSink echoes streamed fragments to a writer as they arrive, so an
// operator can watch generation in real time. Write errors are dropped:
// the sink is observability only and must never affect accumulation.
type ConsoleSink struct {
	W io.Writer
}

func (s *ConsoleSink) Fragment(fragment string) {
	if s.W == nil {
		return
	}
	io.WriteString(s.W, fragment)
}
