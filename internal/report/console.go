package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// timeLayout is the receipt timestamp format in report headers.
const timeLayout = "2006-01-02 15:04:05"

// Separator widths match the original bench tooling's 60-column output.
var (
	bannerRule = strings.Repeat("=", 60)
	reportRule = strings.Repeat("─", 60)
)

// Console is the line-oriented output sink for reports and connection
// notices. Writes are serialised with a mutex so reports from concurrent
// handler goroutines never interleave.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a Console writing to w (normally os.Stdout).
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// WriteReport prints one report: a separator, a timestamp/topic header,
// and the report lines, followed by a blank line.
func (c *Console) WriteReport(r Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, reportRule)
	fmt.Fprintf(c.w, "[%s] Topic: %s\n", r.ReceivedAt.Format(timeLayout), r.Topic)
	fmt.Fprintln(c.w, reportRule)
	for _, l := range r.Lines {
		fmt.Fprintln(c.w, l)
	}
}

// Connected prints the connection banner and one subscription line per
// topic, in registry order.
func (c *Console) Connected(specs []TopicSpec) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, bannerRule)
	fmt.Fprintln(c.w, "Connected to MQTT broker")
	fmt.Fprintln(c.w, bannerRule)
	for _, spec := range specs {
		fmt.Fprintf(c.w, "Subscribed to: %s (QoS %d)\n", spec.Topic, spec.QoS)
	}
	fmt.Fprintln(c.w, bannerRule)
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, "Waiting for sensor data...")
}

// Disconnected prints a connection-lost notice. The transport layer owns
// reconnection; this is display only.
func (c *Console) Disconnected(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.w)
	if err != nil {
		fmt.Fprintf(c.w, "Disconnected from MQTT broker: %v\n", err)
		return
	}
	fmt.Fprintln(c.w, "Disconnected from MQTT broker")
}
