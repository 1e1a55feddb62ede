package model

// Benchmark is one governance benchmark disclosed on the site. Benchmarks are
// seeded at build time and displayed in Position order.
type Benchmark struct {
	ID           int64
	Position     int
	Number       string
	Title        string
	Description  string
	ContactEmail string
}

// HasContact reports whether the benchmark lists a contact address.
func (b Benchmark) HasContact() bool {
	return b.ContactEmail != ""
}
