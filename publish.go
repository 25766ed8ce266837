package main

import (
	"sort"
	"time"

	redigo "github.com/garyburd/redigo/redis"
	"github.com/jpillora/backoff"
	"github.com/platinasystems/log"
)

// Publisher keeps a redis hash holding every clock's rate, as
// "<clock>.rate". It publishes on a timer and whenever it's kicked.
type Publisher struct {
	addr     string
	hash     string
	interval time.Duration
	rates    func() map[string]uint64
	dial     func(network, address string) (redigo.Conn, error)
	c        redigo.Conn
	kick     chan struct{}
	stop     chan struct{}
	done     chan struct{}
}

func NewPublisher(addr, hash string, interval time.Duration, rates func() map[string]uint64) *Publisher {
	p := newPublisher(addr, hash, interval, rates, func(network, address string) (redigo.Conn, error) {
		return redigo.Dial(network, address)
	})
	go p.run()
	return p
}

func newPublisher(addr, hash string, interval time.Duration, rates func() map[string]uint64,
	dial func(network, address string) (redigo.Conn, error)) *Publisher {
	return &Publisher{
		addr:     addr,
		hash:     hash,
		interval: interval,
		rates:    rates,
		dial:     dial,
		kick:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Kick asks for a publish as soon as possible. It never blocks.
func (p *Publisher) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Stop ends publishing and waits for the publisher to finish.
func (p *Publisher) Stop() {
	close(p.stop)
	<-p.done
}

func (p *Publisher) run() {
	defer close(p.done)
	b := &backoff.Backoff{
		Min:    1 * time.Second,
		Max:    60 * time.Second,
		Factor: 2,
		Jitter: false,
	}
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		kick, tick := p.kick, t.C
		var retry <-chan time.Time
		err := p.publish()
		if err != nil {
			d := b.Duration()
			log.Print("warn", "couldn't publish to redis at ", p.addr, ": ", err, ", retrying in ", d)
			retry = time.After(d)
			kick, tick = nil, nil
		} else {
			b.Reset()
		}
		select {
		case <-p.stop:
			if p.c != nil {
				p.c.Close() // Ignore error
			}
			return
		case <-kick:
		case <-retry:
		case <-tick:
		}
	}
}

func (p *Publisher) publish() error {
	if p.c == nil {
		c, err := p.dial("tcp", p.addr)
		if err != nil {
			return err
		}
		p.c = c
	}
	r := p.rates()
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		err := p.c.Send("HSET", p.hash, n+".rate", r[n])
		if err != nil {
			p.drop()
			return err
		}
	}
	_, err := p.c.Do("")
	if err != nil {
		p.drop()
		return err
	}
	return nil
}

func (p *Publisher) drop() {
	p.c.Close() // Ignore error
	p.c = nil
}
