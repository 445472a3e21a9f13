// Package report is the core of the sensorwatch console: it classifies
// inbound sensor messages by topic and renders each one as a
// human-readable report.
//
// # Components
//
//   - Topic registry: the fixed set of sensor/bme680/* topics, their
//     delivery levels, and total classification into categories
//     (CategoryOf never fails; unrecognised topics are CategoryUnknown).
//   - Dispatcher: decodes one message's JSON payload, picks the formatter
//     for its category, and writes the result to the console.
//   - Formatters: one per category, with uniform not-available rendering
//     for absent fields via the Payload accessors.
//   - Console: the mutex-guarded stdout sink.
//
// # Degradation rules
//
// This is diagnostic tooling, so nothing that arrives on the wire may stop
// the listening loop:
//
//   - payload is not JSON → the raw text is the report
//   - field absent → rendered as "N/A"
//   - field present with the wrong shape → one-line processing-error report
//
// No error escapes Dispatch. The dispatcher is stateless across calls and
// safe for concurrent use.
package report
