package order

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
)

// findChild returns the first child element whose local name matches,
// ignoring namespace prefixes (responses use generated ns2/ns3 prefixes).
func findChild(el *etree.Element, local string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == local {
			return child
		}
	}
	return nil
}

// childText returns the trimmed-as-is text of a named child, or "" when
// the child is absent. Blank stays blank so optionality survives a
// round-trip.
func childText(el *etree.Element, local string) string {
	if child := findChild(el, local); child != nil {
		return child.Text()
	}
	return ""
}

// childInt parses a named child as an integer, returning 0 when absent
// or malformed.
func childInt(el *etree.Element, local string) int {
	n, _ := strconv.Atoi(childText(el, local))
	return n
}

// appendText adds a prefixed text child. Empty values are skipped: the
// schema forbids empty placeholder elements.
func appendText(parent *etree.Element, local, prefix, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(shm.Prefixed(local, prefix)).SetText(value)
}

// appendInt adds a prefixed integer child when n is non-zero.
func appendInt(parent *etree.Element, local, prefix string, n int) {
	if n == 0 {
		return
	}
	parent.CreateElement(shm.Prefixed(local, prefix)).SetText(strconv.Itoa(n))
}
