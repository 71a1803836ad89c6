package format

import (
	"fmt"
	"strings"
)

// Separator joins fragments packed into the same message. A newline keeps
// transcripts readable as one entry per line.
const Separator = "\n"

// Sender delivers one completed message downstream.
type Sender interface {
	Send(message string) error
}

// Accumulator packs text fragments into as few budget-sized messages as
// possible, flushing each completed message to the sender in order. Its
// buffer lives for a single request.
type Accumulator struct {
	budget int
	sender Sender
	buf    strings.Builder
	sent   int
}

func NewAccumulator(budget int, sender Sender) (*Accumulator, error) {
	if budget <= 0 {
		return nil, ErrInvalidBudget
	}
	if sender == nil {
		return nil, fmt.Errorf("sender is required")
	}
	return &Accumulator{budget: budget, sender: sender}, nil
}

// Push adds one fragment. A fragment wider than the budget is flushed ahead
// of and then emitted as one message per chunk, since no chunk can be
// combined with anything else without going over. Everything smaller is
// packed greedily behind the separator.
func (a *Accumulator) Push(fragment string) error {
	if fragment == "" {
		return nil
	}

	if len(fragment) > a.budget {
		if err := a.Flush(); err != nil {
			return err
		}
		chunks, err := SplitSafeUTF8(fragment, a.budget)
		if err != nil {
			return err
		}
		for _, chunk := range chunks {
			if err := a.emit(chunk); err != nil {
				return err
			}
		}
		return nil
	}

	extra := len(fragment)
	if a.buf.Len() > 0 {
		extra += len(Separator)
	}
	if a.buf.Len()+extra > a.budget {
		if err := a.Flush(); err != nil {
			return err
		}
	}
	if a.buf.Len() > 0 {
		a.buf.WriteString(Separator)
	}
	a.buf.WriteString(fragment)
	return nil
}

// Flush emits the buffered message, if any, and resets the buffer.
func (a *Accumulator) Flush() error {
	if a.buf.Len() == 0 {
		return nil
	}
	message := a.buf.String()
	a.buf.Reset()
	return a.emit(message)
}

// Sent reports how many messages have been delivered so far. Zero after the
// final Flush means there was nothing to deliver.
func (a *Accumulator) Sent() int {
	return a.sent
}

func (a *Accumulator) emit(message string) error {
	if err := a.sender.Send(message); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	a.sent++
	return nil
}
