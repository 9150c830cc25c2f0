// Package formation holds the static football formation catalog: a lookup
// table from starter count and formation name to the ordered list of
// positional slots. The catalog is embedded data; all lookups are pure.
package formation

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Slot is one position of a formation layout
type Slot struct {
	Index int             `yaml:"-" json:"index"`
	Role  models.SlotRole `yaml:"role" json:"role"`
	X     float64         `yaml:"x" json:"x"`
	Y     float64         `yaml:"y" json:"y"`
}

var catalog map[int]map[string][]Slot

func init() {
	parsed, err := parseCatalog(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("formation: invalid embedded catalog: %v", err))
	}
	catalog = parsed
}

func parseCatalog(data []byte) (map[int]map[string][]Slot, error) {
	var raw map[int]map[string][]Slot
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for count, formations := range raw {
		for name, slots := range formations {
			if len(slots) != count {
				return nil, fmt.Errorf("formation %q declares %d slots for count %d", name, len(slots), count)
			}
			for i := range slots {
				slots[i].Index = i
				switch slots[i].Role {
				case models.SlotRoleGoalkeeper, models.SlotRoleDefender, models.SlotRoleMidfielder, models.SlotRoleAttacker:
				default:
					return nil, fmt.Errorf("formation %q slot %d has unknown role %q", name, i, slots[i].Role)
				}
				if slots[i].X < 0 || slots[i].X > 1 || slots[i].Y < 0 || slots[i].Y > 1 {
					return nil, fmt.Errorf("formation %q slot %d is off the field", name, i)
				}
			}
		}
	}
	return raw, nil
}

// ForCount returns the formations available for a starter count, keyed by
// formation name. Unknown counts yield an empty map, never nil.
func ForCount(count int) map[string][]Slot {
	formations, ok := catalog[count]
	if !ok {
		return map[string][]Slot{}
	}
	out := make(map[string][]Slot, len(formations))
	for name, slots := range formations {
		out[name] = append([]Slot(nil), slots...)
	}
	return out
}

// Lookup returns the slot layout for a formation at the given starter
// count. The second return is false when the catalog has no such entry.
func Lookup(count int, name string) ([]Slot, bool) {
	slots, ok := catalog[count][name]
	if !ok {
		return nil, false
	}
	return append([]Slot(nil), slots...), true
}

// Counts returns the starter counts with at least one catalog entry, ascending.
func Counts() []int {
	counts := make([]int, 0, len(catalog))
	for count := range catalog {
		counts = append(counts, count)
	}
	sort.Ints(counts)
	return counts
}

// Names returns the formation names for a starter count, sorted.
func Names(count int) []string {
	formations := catalog[count]
	names := make([]string, 0, len(formations))
	for name := range formations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
