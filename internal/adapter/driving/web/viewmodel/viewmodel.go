// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

import "fmt"

// GovernancePartialPath is the endpoint that returns the toggled governance panel.
const GovernancePartialPath = "/partials/governance"

// HomeViewModel holds all data needed to render the home page.
type HomeViewModel struct {
	Title      string
	Events     []EventViewModel
	Governance GovernanceViewModel
	Showcase   []ShowcaseViewModel
	Shop       ShopViewModel
}

// EventViewModel holds presentation-ready data for one event listing.
type EventViewModel struct {
	Title           string
	DateLabel       string
	Location        string
	DescriptionHTML string
	ImageURL        string
}

// BenchmarkViewModel holds presentation-ready data for one governance benchmark.
type BenchmarkViewModel struct {
	Number          string
	Title           string
	DescriptionHTML string
	ContactEmail    string
	ContactHref     string // mailto: link, empty when there is no contact
}

// GovernanceViewModel holds the benchmark list and the disclosure panel that
// shows or hides it.
type GovernanceViewModel struct {
	Panel      DisclosurePanel
	Benchmarks []BenchmarkViewModel
}

// ToggleURL is the partial request that returns this panel in the opposite
// state. The current state travels with the request.
func (g GovernanceViewModel) ToggleURL() string {
	return fmt.Sprintf("%s?expanded=%t", GovernancePartialPath, g.Panel.Expanded())
}

// LinkURL is the plain link behind the toggle, followed when HTMX is not
// loaded. The server answers it with the whole page.
func (g GovernanceViewModel) LinkURL() string {
	return g.ToggleURL() + "#governance"
}

// ShowcaseViewModel holds presentation-ready data for one showcase image.
type ShowcaseViewModel struct {
	ImageURL string
	Caption  string
}

// ShopViewModel holds the product grid of the "coming soon" shop.
type ShopViewModel struct {
	Products []ProductCardViewModel
}

// ProductCardViewModel holds presentation-ready data for a product card.
// Every field may be empty; the card renders blank text rather than failing.
type ProductCardViewModel struct {
	Placeholder bool // skeleton card shown while the catalog is empty
	Name        string
	Description string
	PriceText   string // formatted price, empty when no price is announced
	ImageURL    string
	Category    string
	InStock     bool
}

// AddToCartDisabled reports whether the add-to-cart control is disabled.
// Placeholder cards keep the control enabled; it does nothing when pressed.
func (p ProductCardViewModel) AddToCartDisabled() bool {
	return !p.Placeholder && !p.InStock
}
