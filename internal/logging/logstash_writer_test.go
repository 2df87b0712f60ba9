package logging

import (
	"bufio"
	"errors"
	"io"
	"net"
	"testing"
	"time"
)

func TestNewLogstashWriterRejectsEmptyAddress(t *testing.T) {
	if _, err := NewLogstashWriter("  "); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestLogstashWriterShipsLines(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	received := make(chan string, 2)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			received <- scanner.Text()
		}
	}()

	w, err := NewLogstashWriter(ln.Addr().String(), WithWriteTimeout(time.Second), WithQueueSize(16))
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	if _, err := w.Write([]byte(`{"msg":"one"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := w.Write([]byte("{\"msg\":\"two\"}\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, want := range []string{`{"msg":"one"}`, `{"msg":"two"}`} {
		select {
		case got := <-received:
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestLogstashWriterDropsWhenUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	w, err := NewLogstashWriter(addr, WithDialTimeout(100*time.Millisecond), WithRetryInterval(time.Minute))
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	for i := 0; i < 3; i++ {
		n, err := w.Write([]byte("line"))
		if err != nil || n != 4 {
			t.Fatalf("write should succeed while unreachable, got %d, %v", n, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if w.Dropped() != 3 {
		t.Fatalf("expected 3 dropped lines, got %d", w.Dropped())
	}
	if _, err := w.Write([]byte("late")); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected ErrClosedPipe after close, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"WARN":    "warn",
		"error":   "error",
		"":        "info",
		"verbose": "info",
	}
	for in, want := range cases {
		if got := ParseLevel(in).String(); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
