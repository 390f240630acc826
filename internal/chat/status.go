// Package chat resolves how a single message is presented: its delivery
// receipt, its quoted reply, and the shape of the bubble around it.
//
// Everything here is a pure function of its inputs. Callers own rendering.
package chat

import "fmt"

// DeliveryStatus is the acknowledgement state reported for a message.
// Values come from transcript data and are not trusted to be one of the
// known constants.
type DeliveryStatus string

const (
	StatusSent      DeliveryStatus = "sent"
	StatusDelivered DeliveryStatus = "delivered"
	StatusRead      DeliveryStatus = "read"
)

// UnknownStatusText is shown, and announced, for any status outside the
// known set. Screen readers depend on it verbatim.
const UnknownStatusText = "Unknown status"

// DisplayMode selects the compact symbol table or the word table.
type DisplayMode int

const (
	DisplaySymbolic DisplayMode = iota
	DisplayTextual
)

func (m DisplayMode) String() string {
	switch m {
	case DisplaySymbolic:
		return "symbolic"
	case DisplayTextual:
		return "textual"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// ParseDisplayMode parses the config spelling of a display mode.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch s {
	case "symbolic", "symbols":
		return DisplaySymbolic, nil
	case "textual", "text":
		return DisplayTextual, nil
	default:
		return DisplaySymbolic, fmt.Errorf("unknown display mode %q (want symbolic or textual)", s)
	}
}

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == DisplayTextual {
		return DisplaySymbolic
	}
	return DisplayTextual
}

// StatusLabel is the resolved receipt for one message.
type StatusLabel struct {
	Text       string // symbol or word to draw
	Accessible string // always non-empty
	Emphasis   bool   // read receipts draw with a distinct style
	Known      bool   // false when Text is the fallback
}

// ResolveStatusLabel maps status to a label in the given mode. It is total:
// unrecognised statuses produce the UnknownStatusText fallback in both modes.
// An unrecognised mode uses the textual table.
func ResolveStatusLabel(status DeliveryStatus, mode DisplayMode) StatusLabel {
	word, ok := statusWord(status)
	if !ok {
		return StatusLabel{Text: UnknownStatusText, Accessible: UnknownStatusText}
	}

	label := StatusLabel{Text: word, Accessible: word, Known: true}
	if mode == DisplaySymbolic {
		label.Text, label.Emphasis = statusSymbol(status)
	}
	return label
}

func statusWord(status DeliveryStatus) (string, bool) {
	switch status {
	case StatusSent:
		return "Sent", true
	case StatusDelivered:
		return "Delivered", true
	case StatusRead:
		return "Read", true
	default:
		return "", false
	}
}

// statusSymbol returns the symbol and whether it carries read emphasis.
func statusSymbol(status DeliveryStatus) (string, bool) {
	switch status {
	case StatusSent:
		return "✓", false
	case StatusDelivered:
		return "✓✓", false
	case StatusRead:
		return "✓✓", true
	default:
		return UnknownStatusText, false
	}
}

// InspectFunc is notified when the user hovers or inspects a receipt.
type InspectFunc func(messageID string, label StatusLabel)

// NotifyInspect calls fn if it is set.
func NotifyInspect(fn InspectFunc, messageID string, label StatusLabel) {
	if fn != nil {
		fn(messageID, label)
	}
}
