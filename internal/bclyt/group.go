package bclyt

// Group is one node of a layout's group tree (spec §3.2): "each group
// names a list of 16-byte panel-name references." Grounded on Grp1/
// GroupWrapper in original_source/internal/extraction/bclyt.py.
type Group struct {
	Name        string // NUL-padded to 16 bytes on the wire
	PanelRefs   []string
	Children    []*Group
}

const groupNameSize = 0x10
