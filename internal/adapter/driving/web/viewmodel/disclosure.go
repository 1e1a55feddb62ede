package viewmodel

// DisclosurePanel is the state of an expandable section: collapsed or
// expanded. The zero value is collapsed. A panel belongs to one render; it is
// never shared between requests.
type DisclosurePanel struct {
	expanded bool
}

// Expanded reports whether the panel content is visible.
func (p DisclosurePanel) Expanded() bool {
	return p.expanded
}

// Toggle flips the panel between collapsed and expanded.
func (p *DisclosurePanel) Toggle() {
	p.expanded = !p.expanded
}
