package snapshot

import (
	"fmt"
	"strconv"

	"github.com/keyholelabs/keyhole"
)

// slotValue presents one dumped slot to the dispatch registry as an
// inspected value of the runtime's handle type.
type slotValue struct {
	slot Slot
}

func (v slotValue) TypeName() string { return keyhole.PendingValueTypeName }

func (v slotValue) Uint64() (uint64, bool) { return 0, false }

func (v slotValue) Field(name string) (keyhole.Value, bool) {
	switch name {
	case "owned":
		return wordValue(v.slot.Owned), true
	case "sub":
		return keyhole.Text(v.slot.Sub), true
	}
	return nil, false
}

func (v slotValue) String() string {
	return fmt.Sprintf("PendingValue(0x%016x)", v.slot.Owned)
}

// wordValue is a raw integral field.
type wordValue uint64

func (v wordValue) TypeName() string { return "u64" }

func (v wordValue) Uint64() (uint64, bool) { return uint64(v), true }

func (v wordValue) Field(string) (keyhole.Value, bool) { return nil, false }

func (v wordValue) String() string { return strconv.FormatUint(uint64(v), 10) }

// Render runs every slot through the registry and returns one display
// line per slot, in slot order. Slots the registry reports as not
// applicable fall back to the host default rendering.
func (s Snapshot) Render(reg *keyhole.Registry) []string {
	lines := make([]string, 0, len(s.Slots))
	for _, slot := range s.Slots {
		v := slotValue{slot: slot}
		if r, ok := reg.Lookup(v); ok {
			lines = append(lines, r.Render())
			continue
		}
		lines = append(lines, v.String())
	}
	return lines
}
