package main

import (
	"fmt"
	"sync"
	"testing"
	"time"

	redigo "github.com/garyburd/redigo/redis"
)

// fakeConn records what would have been sent to redis.
type fakeConn struct {
	mu      sync.Mutex
	pending []string
	sent    []string
	flushes int
	closed  bool
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) Err() error { return nil }

func (c *fakeConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cmd != "" {
		c.pending = append(c.pending, fmt.Sprintln(append([]interface{}{cmd}, args...)...))
	}
	c.sent = append(c.sent, c.pending...)
	c.pending = nil
	c.flushes++
	return nil, nil
}

func (c *fakeConn) Send(cmd string, args ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, fmt.Sprintln(append([]interface{}{cmd}, args...)...))
	return nil
}

func (c *fakeConn) Flush() error                   { return nil }
func (c *fakeConn) Receive() (interface{}, error) { return nil, nil }

func (c *fakeConn) state() ([]string, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.sent...), c.flushes, c.closed
}

// waitFor polls f until it's true or a second has gone by.
func waitFor(t *testing.T, what string, f func() bool) {
	for i := 0; i < 100; i++ {
		if f() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestPublisher(t *testing.T) {
	c := &fakeConn{}
	rates := func() map[string]uint64 {
		return map[string]uint64{"fin_pll": 24000000, "dout_top": 8000000}
	}
	dial := func(network, address string) (redigo.Conn, error) {
		if address != "redis:6379" {
			t.Errorf("dialled %s", address)
		}
		return c, nil
	}
	p := newPublisher("redis:6379", "clkctl", time.Hour, rates, dial)
	go p.run()

	waitFor(t, "first publish", func() bool {
		_, n, _ := c.state()
		return n == 1
	})
	sent, _, _ := c.state()
	want := []string{
		"HSET clkctl dout_top.rate 8000000\n",
		"HSET clkctl fin_pll.rate 24000000\n",
	}
	if len(sent) != len(want) {
		t.Fatalf("got %q, want %q", sent, want)
	}
	for i := range want {
		if sent[i] != want[i] {
			t.Errorf("command %d: got %q, want %q", i, sent[i], want[i])
		}
	}

	p.Kick()
	waitFor(t, "kicked publish", func() bool {
		_, n, _ := c.state()
		return n == 2
	})

	p.Stop()
	if _, _, closed := c.state(); !closed {
		t.Errorf("connection left open after Stop")
	}
}

func TestPublisherBacksOff(t *testing.T) {
	var mu sync.Mutex
	dials := 0
	dial := func(network, address string) (redigo.Conn, error) {
		mu.Lock()
		defer mu.Unlock()
		dials++
		return nil, fmt.Errorf("connection refused")
	}
	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return dials
	}
	p := newPublisher("redis:6379", "clkctl", 10*time.Millisecond, func() map[string]uint64 { return nil }, dial)
	go p.run()
	waitFor(t, "first dial", func() bool { return count() == 1 })

	// Neither kicks nor ticks cut the one second backoff short.
	p.Kick()
	time.Sleep(100 * time.Millisecond)
	if n := count(); n != 1 {
		t.Errorf("got %d dials during backoff, want 1", n)
	}

	start := time.Now()
	p.Stop()
	if d := time.Since(start); d > 500*time.Millisecond {
		t.Errorf("Stop took %v while backing off", d)
	}
}
