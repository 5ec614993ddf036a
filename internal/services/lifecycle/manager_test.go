package lifecycle

import (
	"context"
	"errors"
	"testing"
)

type recordingCloser struct {
	order *[]string
	name  string
}

func (c *recordingCloser) Close() error {
	*c.order = append(*c.order, c.name)
	return nil
}

func TestShutdownReverseOrder(t *testing.T) {
	m := New(0, nil)
	var order []string

	m.RegisterCloser("store", &recordingCloser{order: &order, name: "store"})
	m.Register("monitor", func(context.Context) error {
		order = append(order, "monitor")
		return nil
	})
	m.Register("http_server", func(context.Context) error {
		order = append(order, "http_server")
		return nil
	})

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	want := []string{"http_server", "monitor", "store"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	m := New(0, nil)
	calls := 0
	m.Register("store", func(context.Context) error {
		calls++
		return nil
	})

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}
	if calls != 1 {
		t.Fatalf("hook ran %d times, want 1", calls)
	}
}

func TestShutdownContinuesPastFailures(t *testing.T) {
	m := New(0, nil)
	stopped := false
	m.Register("store", func(context.Context) error {
		stopped = true
		return nil
	})
	m.Register("redis", func(context.Context) error {
		return errors.New("connection already gone")
	})

	err := m.Shutdown(context.Background())
	if err == nil {
		t.Fatal("expected the redis failure to surface")
	}
	if !stopped {
		t.Fatal("store hook skipped after earlier failure")
	}
}
