package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

var errBroken = errors.New("pipe broke")

func newTestHandler() (*Handler, *bytes.Buffer) {
	var buf bytes.Buffer
	console := NewConsole(&buf)
	return NewHandler(NewDispatcher(console), console), &buf
}

func TestHandleMessage(t *testing.T) {
	h, buf := newTestHandler()

	fixed := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	oldNow := now
	now = func() time.Time { return fixed }
	defer func() { now = oldNow }()

	err := h.HandleMessage(TopicStatus, []byte(`{"status":"online","client_id":"esp32-01"}`))
	if err != nil {
		t.Fatalf("HandleMessage() error = %v, want nil", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[2026-08-23 08:00:00]") {
		t.Errorf("output missing receipt timestamp:\n%s", out)
	}
	if !strings.Contains(out, "esp32-01") {
		t.Errorf("output missing report content:\n%s", out)
	}
}

func TestHandleMessage_NeverReturnsError(t *testing.T) {
	h, _ := newTestHandler()

	payloads := []string{
		`{"temperature":"not a number"}`, // wrong shape
		`{"broken`,                       // invalid JSON
		``,                               // empty
	}
	for _, payload := range payloads {
		if err := h.HandleMessage(TopicData, []byte(payload)); err != nil {
			t.Errorf("HandleMessage(%q) error = %v, want nil", payload, err)
		}
	}
}

func TestHandleConnect(t *testing.T) {
	h, buf := newTestHandler()

	h.HandleConnect()

	out := buf.String()
	if !strings.Contains(out, "Connected to MQTT broker") {
		t.Errorf("output missing connect banner:\n%s", out)
	}
	for _, spec := range AllTopics() {
		if !strings.Contains(out, spec.Topic) {
			t.Errorf("output missing subscription line for %q:\n%s", spec.Topic, out)
		}
	}
}

func TestHandleDisconnect(t *testing.T) {
	h, buf := newTestHandler()

	h.HandleDisconnect(errBroken)

	if !strings.Contains(buf.String(), "pipe broke") {
		t.Errorf("output missing disconnect reason:\n%s", buf.String())
	}
}
