package agent

import (
	"errors"
	"fmt"
)

// errEmptyReply marks a completion that came back without any choices.
var errEmptyReply = errors.New("reply contained no choices")

// TransportError wraps a failure reaching the inference endpoint or reading
// its reply. The retry loop treats it the same as a parse failure; handlers
// use it to tell endpoint trouble apart from bad model output.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("inference endpoint: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
