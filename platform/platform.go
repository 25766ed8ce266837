// Package platform finds out which SoC it's running on, maps its clock
// management units and builds them into a single clock graph.
package platform

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/Jon-Bright/clkctl/clk"
	"github.com/Jon-Bright/clkctl/cmu"
	"github.com/Jon-Bright/clkctl/exynos7420"
	"github.com/platinasystems/fdt"
	"github.com/platinasystems/log"
)

type hw struct {
	socType int
	name    string
	domains func() []*cmu.Domain
	inputs  func() map[string]uint64
}

const (
	SOC_TYPE_UNKNOWN = iota
	SOC_TYPE_EXYNOS7
)

// DEFAULT_SOC is assumed when there's no device tree to ask.
const DEFAULT_SOC = exynos7420.COMPATIBLE

var socVariants = map[string]hw{
	exynos7420.COMPATIBLE: {
		socType: SOC_TYPE_EXYNOS7,
		name:    "Exynos 7420",
		domains: exynos7420.Domains,
		inputs:  exynos7420.DefaultInputs,
	},
}

// Platform is a probed SoC: its clock graph and the mapped CMUs behind it.
type Platform struct {
	hw      *hw
	g       *clk.Graph
	res     []cmu.Result
	invalid clk.ValidationErrors
}

// Open reads the device tree blob in dtbFile and probes from it. An empty
// dtbFile, or one that doesn't exist, means the SoC's defaults are used.
func Open(dtbFile string, m cmu.Mapper) (*Platform, error) {
	if dtbFile == "" {
		return New(nil, m)
	}
	b, err := ioutil.ReadFile(dtbFile)
	if os.IsNotExist(err) {
		log.Print("warn", dtbFile, " not found, using default bases")
		return New(nil, m)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't read device tree: %v", err)
	}
	return New(b, m)
}

// detectHardware picks the SoC from the root node's compatible list.
func detectHardware(t *fdt.Tree) (*hw, error) {
	compat := stringsProp(t, t.RootNode, "compatible")
	for _, c := range compat {
		if v, ok := socVariants[c]; ok {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("couldn't identify SoC from compatible %q", compat)
}

// New builds a Platform. With a nil dtb, the default SoC and its built-in
// bases are used. Domains that fail to map or build are logged and left
// out; New only fails if none of them could be probed.
func New(dtb []byte, m cmu.Mapper) (*Platform, error) {
	var (
		t   *fdt.Tree
		h   *hw
		err error
	)
	if dtb == nil {
		v := socVariants[DEFAULT_SOC]
		h = &v
	} else {
		t, err = parseDTB(dtb)
		if err != nil {
			return nil, err
		}
		h, err = detectHardware(t)
		if err != nil {
			return nil, err
		}
	}
	log.Print("info", "SoC: ", h.name)

	domains := h.domains()
	inputs := h.inputs()
	if t != nil {
		applyBases(t, domains)
		clocks := make(map[string]string)
		for _, d := range domains {
			for _, c := range d.Clocks {
				clocks[c.ClockName()] = d.Name
			}
		}
		for n, hz := range fixedClocks(t) {
			if d, ok := clocks[n]; ok {
				log.Print("warn", "ignoring fixed-clock ", n, ", it's a clock in ", d)
				continue
			}
			inputs[n] = hz
		}
	}

	g := clk.New()
	names := make([]string, 0, len(inputs))
	for n := range inputs {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		err = g.SetInput(n, inputs[n])
		if err != nil {
			return nil, err
		}
	}

	p := &Platform{hw: h, g: g}
	p.res = cmu.ProbeAll(g, domains, m)
	if len(p.Failed()) == len(p.res) {
		return nil, fmt.Errorf("couldn't probe any of %d CMUs", len(p.res))
	}
	p.invalid = clk.Validate(g)
	for _, e := range p.invalid {
		log.Print("warn", e)
	}
	return p, nil
}

func (p *Platform) Name() string {
	return p.hw.name
}

func (p *Platform) Graph() *clk.Graph {
	return p.g
}

func (p *Platform) Results() []cmu.Result {
	return p.res
}

// Failed returns the results of every domain that couldn't be probed.
func (p *Platform) Failed() []cmu.Result {
	var f []cmu.Result
	for _, r := range p.res {
		if r.Err != nil {
			f = append(f, r)
		}
	}
	return f
}

// ValidationErrors returns what Validate found once every domain was built.
func (p *Platform) ValidationErrors() clk.ValidationErrors {
	return p.invalid
}

// Close unmaps every CMU. The graph must not be used afterwards.
func (p *Platform) Close() error {
	return cmu.Close(p.res)
}
