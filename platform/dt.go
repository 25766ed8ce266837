package platform

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Jon-Bright/clkctl/cmu"
	"github.com/platinasystems/fdt"
)

const (
	DTB_FILE        = "/sys/firmware/fdt"
	FDT_MAGIC       = 0xd00dfeed
	FDT_HEADER_SIZE = 40
)

// parseDTB parses a flattened device tree blob. The parser trusts its input,
// so the header is checked first and anything it trips over is returned as
// an error.
func parseDTB(b []byte) (t *fdt.Tree, err error) {
	if len(b) < FDT_HEADER_SIZE {
		return nil, fmt.Errorf("couldn't parse device tree: only %d bytes", len(b))
	}
	if m := binary.BigEndian.Uint32(b); m != FDT_MAGIC {
		return nil, fmt.Errorf("couldn't parse device tree: bad magic %08X", m)
	}
	if ts := binary.BigEndian.Uint32(b[4:]); int(ts) > len(b) {
		return nil, fmt.Errorf("couldn't parse device tree: header says %d bytes, have %d", ts, len(b))
	}
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("couldn't parse device tree: %v", r)
		}
	}()
	t = &fdt.Tree{Debug: false, IsLittleEndian: false}
	err = t.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse device tree: %v", err)
	}
	if t.RootNode == nil {
		return nil, fmt.Errorf("couldn't parse device tree: no root node")
	}
	return t, nil
}

func stringsProp(t *fdt.Tree, n *fdt.Node, name string) []string {
	b, ok := n.Properties[name]
	if !ok {
		return nil
	}
	var s []string
	for _, v := range t.PropStringSlice(b) {
		if v != "" {
			s = append(s, v)
		}
	}
	return s
}

func hasString(s []string, want string) bool {
	for _, v := range s {
		if v == want {
			return true
		}
	}
	return false
}

// nodeReg reads a node's first reg entry. Both one- and two-cell addresses
// are understood.
func nodeReg(t *fdt.Tree, n *fdt.Node) (base uintptr, size int, ok bool) {
	reg := t.PropUint32Slice(n.Properties["reg"])
	switch {
	case len(reg) >= 4:
		return uintptr(uint64(reg[0])<<32 | uint64(reg[1])), int(reg[3]), true
	case len(reg) >= 2:
		return uintptr(reg[0]), int(reg[1]), true
	case len(reg) == 1:
		return uintptr(reg[0]), 0, true
	}
	return 0, 0, false
}

// applyBases fills in each domain's base (and size, if given) from the node
// that claims its compatible string. Domains without a node keep their
// defaults.
func applyBases(t *fdt.Tree, domains []*cmu.Domain) {
	for _, d := range domains {
		d := d
		t.EachProperty("compatible", d.Compatible, func(n *fdt.Node, name, value string) {
			if !hasString(stringsProp(t, n, "compatible"), d.Compatible) {
				return
			}
			base, size, ok := nodeReg(t, n)
			if !ok {
				return
			}
			d.Base = base
			if size > 0 {
				d.Size = size
			}
		})
	}
}

// fixedClocks returns the rate of every fixed-clock node, by output name.
func fixedClocks(t *fdt.Tree) map[string]uint64 {
	fc := make(map[string]uint64)
	t.EachProperty("compatible", "fixed-clock", func(n *fdt.Node, name, value string) {
		if !hasString(stringsProp(t, n, "compatible"), "fixed-clock") {
			return
		}
		b, ok := n.Properties["clock-frequency"]
		if !ok || len(b) < 4 {
			return
		}
		out := n.Name
		if names := stringsProp(t, n, "clock-output-names"); len(names) > 0 {
			out = names[0]
		} else if i := strings.IndexByte(out, '@'); i >= 0 {
			out = out[:i]
		}
		fc[out] = uint64(t.PropUint32(b))
	})
	return fc
}
