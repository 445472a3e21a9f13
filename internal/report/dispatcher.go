package report

import (
	"fmt"
	"time"
)

// Message is one inbound delivery handed over by the transport layer.
// It is owned by the dispatcher for the duration of one Dispatch call
// and never retained afterwards.
type Message struct {
	Topic      string
	Payload    []byte
	ReceivedAt time.Time
}

// Report is the rendered result of dispatching one Message: an ordered
// sequence of display lines, written to the console and discarded.
type Report struct {
	Topic      string
	ReceivedAt time.Time
	Lines      []string
}

// Dispatcher turns inbound messages into console reports.
//
// It is stateless across calls: the only field is the output sink, set at
// construction and read-only afterwards, so Dispatch is safe to call from
// multiple goroutines.
type Dispatcher struct {
	console *Console
}

// NewDispatcher creates a Dispatcher writing to the given console.
// A nil console is allowed; Dispatch then only returns the Report.
func NewDispatcher(console *Console) *Dispatcher {
	return &Dispatcher{console: console}
}

// Dispatch decodes one message, formats it for its topic category, and
// writes the result to the console.
//
// Dispatch never panics and never surfaces an error to the caller. One
// malformed message must not take down the listening loop, so every
// failure mode degrades to report content instead:
//   - payload is not valid JSON: the report is the raw payload text
//   - a field is present but of the wrong shape: a one-line processing
//     error report
//
// Parameters:
//   - msg: The inbound message (topic, raw payload, receipt time)
//
// Returns:
//   - Report: The rendered report, as written to the console
func (d *Dispatcher) Dispatch(msg Message) Report {
	r := Report{
		Topic:      msg.Topic,
		ReceivedAt: msg.ReceivedAt,
	}

	payload, err := decodePayload(msg.Payload)
	if err != nil {
		// Not JSON. Show the raw bytes as text; this is diagnostic output,
		// not a failure.
		r.Lines = []string{string(msg.Payload)}
		d.write(r)
		return r
	}

	lines, err := formatPayload(CategoryOf(msg.Topic), payload)
	if err != nil {
		lines = []string{fmt.Sprintf("Error processing message: %v", err)}
	}
	r.Lines = lines

	d.write(r)
	return r
}

// write sends the report to the console sink, if one is configured.
func (d *Dispatcher) write(r Report) {
	if d.console != nil {
		d.console.WriteReport(r)
	}
}

// formatPayload selects the formatter for a category.
// The switch is exhaustive over the closed Category set; Unknown is the
// fallback, not an error.
func formatPayload(cat Category, p Payload) ([]string, error) {
	switch cat {
	case CategoryData:
		return formatData(p)
	case CategoryAirQuality:
		return formatAirQuality(p)
	case CategoryStatus:
		return formatStatus(p)
	case CategoryAlert:
		return formatAlert(p)
	default:
		return formatUnknown(p)
	}
}
