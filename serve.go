package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/Jon-Bright/clkctl/clk"
	"github.com/Jon-Bright/clkctl/cmu"
	"github.com/Jon-Bright/clkctl/platform"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
)

const (
	DEFAULT_PORT    = 24601
	DEFAULT_HASH    = "clkctl"
	DEFAULT_PUBLISH = 10 * time.Second
)

type Server struct {
	mu      sync.Mutex
	g       *clk.Graph
	domains []cmu.Result
	closed  bool
	pub     *Publisher
	l       net.Listener
	done    chan struct{}

	connMu sync.Mutex
	conns  map[net.Conn]bool
	wg     sync.WaitGroup
}

func NewServer(port int, g *clk.Graph, domains []cmu.Result) (*Server, error) {
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	log.Printf("info", "Listening on port %d", l.Addr().(*net.TCPAddr).Port)
	return &Server{g: g, domains: domains, l: l, done: make(chan struct{}), conns: make(map[net.Conn]bool)}, nil
}

func parseClock(parms string) (string, string, error) {
	t := strings.Fields(parms)
	if len(t) == 0 {
		return "", "", fmt.Errorf("missing clock name")
	}
	return t[0], strings.Join(t[1:], " "), nil
}

func parseRate(parms string) (uint64, error) {
	t := strings.Fields(parms)
	if len(t) != 1 {
		return 0, fmt.Errorf("want one rate in Hz, got '%s'", parms)
	}
	hz, err := strconv.ParseUint(t[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("couldn't parse rate '%s': %v", t[0], err)
	}
	return hz, nil
}

func noMore(cmd, parms string) error {
	if parms != "" {
		return fmt.Errorf("%s takes one clock, got extra '%s'", cmd, parms)
	}
	return nil
}

// execute runs one command against the graph and writes its reply to w. A
// returned error hasn't been written yet. mutated reports whether any
// register may have changed.
func (s *Server) execute(cmd, parms string, w *bufio.Writer) (mutated bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, fmt.Errorf("server is shutting down")
	}
	switch cmd {
	case "RATE":
		name, parms, err := parseClock(parms)
		if err != nil {
			return false, err
		}
		if err = noMore(cmd, parms); err != nil {
			return false, err
		}
		hz, err := s.g.Rate(name)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(w, "%d\n", hz)
		return false, nil
	case "SET":
		name, parms, err := parseClock(parms)
		if err != nil {
			return false, err
		}
		hz, err := parseRate(parms)
		if err != nil {
			return false, err
		}
		got, err := s.g.SetRate(name, hz)
		if err != nil {
			return true, err
		}
		log.Printf("info", "%s set to %d Hz (asked for %d)", name, got, hz)
		fmt.Fprintf(w, "%d\n", got)
		return true, nil
	case "ENABLE", "DISABLE":
		name, parms, err := parseClock(parms)
		if err != nil {
			return false, err
		}
		if err = noMore(cmd, parms); err != nil {
			return false, err
		}
		if cmd == "ENABLE" {
			err = s.g.Enable(name)
		} else {
			err = s.g.Disable(name)
		}
		if err != nil {
			return false, err
		}
		log.Print("info", strings.ToLower(cmd), "d ", name)
		w.WriteString("OK\n")
		return true, nil
	case "ENABLED":
		name, parms, err := parseClock(parms)
		if err != nil {
			return false, err
		}
		if err = noMore(cmd, parms); err != nil {
			return false, err
		}
		on, err := s.g.IsEnabled(name)
		if err != nil {
			return false, err
		}
		if on {
			w.WriteString("1\n")
		} else {
			w.WriteString("0\n")
		}
		return false, nil
	case "PARENT":
		name, parent, err := parseClock(parms)
		if err != nil {
			return false, err
		}
		if parent == "" {
			p, err := s.g.Parent(name)
			if err != nil {
				return false, err
			}
			w.WriteString(p + "\n")
			return false, nil
		}
		err = s.g.SetParent(name, parent)
		if err != nil {
			return false, err
		}
		log.Print("info", name, " reparented to ", parent)
		w.WriteString("OK\n")
		return true, nil
	case "DUMP":
		s.dump(parms, w)
		w.WriteString("OK\n")
		return false, nil
	case "DOMAINS":
		for _, r := range s.domains {
			status := "ok"
			if r.Err != nil {
				status = "failed: " + r.Err.Error()
			}
			fmt.Fprintf(w, "%s %08X %d %s\n", r.Domain.Name, r.Domain.Base, len(r.Domain.Clocks), status)
		}
		w.WriteString("OK\n")
		return false, nil
	}
	return false, fmt.Errorf("unknown command: %s", cmd)
}

// dump writes one line per input and clock whose name starts with prefix:
// name, kind, rate and parent. Anything that can't be read shows as "-".
func (s *Server) dump(prefix string, w *bufio.Writer) {
	for _, n := range s.g.Inputs() {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		hz, _ := s.g.Rate(n)
		fmt.Fprintf(w, "%s input %d -\n", n, hz)
	}
	for _, n := range s.g.Names() {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		c, _ := s.g.Resolve(n)
		rate := "-"
		if hz, err := s.g.Rate(n); err == nil {
			rate = strconv.FormatUint(hz, 10)
		}
		parent, err := c.Parent()
		if err != nil {
			parent = "-"
		}
		fmt.Fprintf(w, "%s %s %s %s\n", n, c.Kind(), rate, parent)
	}
}

// rates returns the current rate of every clock and input that has one.
func (s *Server) rates() map[string]uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := make(map[string]uint64)
	if s.closed {
		return r
	}
	for _, n := range append(s.g.Inputs(), s.g.Names()...) {
		if hz, err := s.g.Rate(n); err == nil {
			r[n] = hz
		}
	}
	return r
}

// runLine handles one line of input, from a connection or the console. It
// returns true once the other side has asked to quit.
func (s *Server) runLine(l string, w *bufio.Writer) bool {
	l = strings.TrimSpace(l)
	if l == "" {
		return false
	}
	log.Printf("Got line '%s'", l)
	t := strings.SplitN(l, " ", 2)
	cmd := strings.ToUpper(t[0])
	parms := ""
	if len(t) > 1 {
		parms = strings.TrimSpace(t[1])
	}
	if cmd == "QUIT" {
		return true
	}
	mutated, err := s.execute(cmd, parms, w)
	if err != nil {
		log.Print("err", cmd, ": ", err)
		w.WriteString("ERR: " + err.Error() + "\n")
	}
	if mutated && s.pub != nil {
		s.pub.Kick()
	}
	err = w.Flush()
	if err != nil {
		log.Print("err", "couldn't write reply: ", err)
		return true
	}
	return false
}

func (s *Server) handleConnection(c net.Conn) {
	log.Printf("info", "Handling connection from %v", c.RemoteAddr())
	defer c.Close()
	r := bufio.NewReader(c)
	w := bufio.NewWriter(c)
	for {
		l, err := r.ReadString('\n')
		if err == io.EOF {
			log.Printf("EOF for connection %v", c.RemoteAddr())
			return
		}
		if err != nil {
			log.Printf("err", "Error reading string for connection %v: %v", c.RemoteAddr(), err)
			return
		}
		if s.runLine(l, w) {
			return
		}
	}
}

func (s *Server) handleConnections() {
	for {
		conn, err := s.l.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			log.Printf("err", "Error accepting connection: %v", err)
			continue
		}
		s.connMu.Lock()
		select {
		case <-s.done:
			s.connMu.Unlock()
			conn.Close() // Ignore error
			return
		default:
		}
		s.conns[conn] = true
		s.wg.Add(1)
		s.connMu.Unlock()
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
			s.connMu.Lock()
			delete(s.conns, conn)
			s.connMu.Unlock()
		}()
	}
}

// Close stops accepting connections, hangs up on the open ones and waits for
// their handlers. Once it returns, the graph is no longer touched, so the
// registers behind it may be unmapped.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	close(s.done)
	err := s.l.Close()
	s.connMu.Lock()
	for c := range s.conns {
		c.Close() // Ignore error
	}
	s.connMu.Unlock()
	s.wg.Wait()
	return err
}

func fatalf(format string, args ...interface{}) {
	log.Printf(append([]interface{}{"err", format}, args...)...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type config struct {
	sim        bool
	console    bool
	stderr     bool
	noValidate bool
	dtb        string
	port       int
	redis      string
	hash       string
	publish    time.Duration
}

// parseArgs reads the command line, goes style: switches first, then
// valued parameters. Nothing else may be left over.
func parseArgs(args []string) (*config, error) {
	flag, args := flags.New(args, "-sim", "-console", "-stderr", "-no-validate")
	parm, args := parms.New(args, "-dtb", "-port", "-redis", "-hash", "-publish")
	if len(args) > 0 {
		return nil, fmt.Errorf("%v: unexpected", args)
	}
	cfg := &config{
		sim:        flag.ByName["-sim"],
		console:    flag.ByName["-console"],
		stderr:     flag.ByName["-stderr"],
		noValidate: flag.ByName["-no-validate"],
		dtb:        parm.ByName["-dtb"],
		port:       DEFAULT_PORT,
		redis:      parm.ByName["-redis"],
		hash:       DEFAULT_HASH,
		publish:    DEFAULT_PUBLISH,
	}
	if s := parm.ByName["-port"]; s != "" {
		_, err := fmt.Sscan(s, &cfg.port)
		if err != nil || cfg.port < 0 || cfg.port > 65535 {
			return nil, fmt.Errorf("invalid port '%s'", s)
		}
	}
	if s := parm.ByName["-hash"]; s != "" {
		cfg.hash = s
	}
	if s := parm.ByName["-publish"]; s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid publish interval '%s'", s)
		}
		cfg.publish = d
	}
	if cfg.dtb == "" && !cfg.sim {
		cfg.dtb = platform.DTB_FILE
	}
	return cfg, nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.stderr {
		log.Tee(os.Stderr)
	}

	mapper := cmu.DevMem
	if cfg.sim {
		mapper = cmu.Anon
	}
	p, err := platform.Open(cfg.dtb, mapper)
	if err != nil {
		fatalf("Failed probing clocks: %v", err)
	}
	defer p.Close()
	if len(p.ValidationErrors()) > 0 && !cfg.noValidate {
		fatalf("Clock graph failed validation: %v", p.ValidationErrors())
	}
	log.Printf("info", "%s: %d clocks, %d CMUs failed", p.Name(), p.Graph().Len(), len(p.Failed()))

	s, err := NewServer(cfg.port, p.Graph(), p.Results())
	if err != nil {
		fatalf("Failed creating server: %v", err)
	}
	if cfg.redis != "" {
		s.pub = NewPublisher(cfg.redis, cfg.hash, cfg.publish, s.rates)
		defer s.pub.Stop()
	}
	go s.handleConnections()
	// Deferred last so it runs first: every connection is gone before the
	// CMUs are unmapped.
	defer s.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	if cfg.console {
		done := make(chan struct{})
		go func() {
			s.console(os.Stdin, os.Stdout)
			close(done)
		}()
		select {
		case <-done:
		case <-sig:
		}
	} else {
		<-sig
	}
	log.Print("info", "shutting down")
}
