package model

import "strings"

// NoAssignment is the canonical sentinel for an unassigned resource.
const NoAssignment = ""

// HasAssignment reports whether ref points at a real mission. Historical
// rosters used a dash or an en dash for "none"; both read as unassigned.
func HasAssignment(ref string) bool {
	switch strings.TrimSpace(ref) {
	case "", "-", "–":
		return false
	}
	return true
}
