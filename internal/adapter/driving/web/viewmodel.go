package web

import (
	"golang.org/x/text/language"

	vm "github.com/tfccofficial/tfcc/internal/adapter/driving/web/viewmodel"
	"github.com/tfccofficial/tfcc/internal/application"
	"github.com/tfccofficial/tfcc/internal/domain/model"
)

const (
	siteTitle = "TFCC | Strongman & Combat Sports"

	fallbackEventImage   = "/static/img/event-placeholder.svg"
	fallbackProductImage = "/static/img/product-placeholder.svg"

	// placeholderCardCount is the number of skeleton cards shown while the
	// catalog is empty.
	placeholderCardCount = 4
)

// toHomeViewModel converts the loaded site content into the home page view
// model with the governance panel in the given state.
func toHomeViewModel(content *application.SiteContent, panel vm.DisclosurePanel, locale language.Tag) vm.HomeViewModel {
	return vm.HomeViewModel{
		Title:      siteTitle,
		Events:     toEventViewModels(content.Events),
		Governance: toGovernanceViewModel(content.Benchmarks, panel),
		Showcase:   toShowcaseViewModels(content.Showcase),
		Shop:       toShopViewModel(content.Products, locale),
	}
}

// toGovernanceViewModel converts benchmarks into the governance view model
// with the given panel state.
func toGovernanceViewModel(benchmarks []model.Benchmark, panel vm.DisclosurePanel) vm.GovernanceViewModel {
	vms := make([]vm.BenchmarkViewModel, 0, len(benchmarks))
	for _, b := range benchmarks {
		bvm := vm.BenchmarkViewModel{
			Number:          b.Number,
			Title:           b.Title,
			DescriptionHTML: DescriptionHTML(b.Description),
		}
		if b.HasContact() {
			bvm.ContactEmail = b.ContactEmail
			bvm.ContactHref = "mailto:" + b.ContactEmail
		}
		vms = append(vms, bvm)
	}

	return vm.GovernanceViewModel{
		Panel:      panel,
		Benchmarks: vms,
	}
}

// toEventViewModels converts domain Events to EventViewModels.
func toEventViewModels(events []model.Event) []vm.EventViewModel {
	vms := make([]vm.EventViewModel, 0, len(events))
	for _, e := range events {
		imageURL := e.ImageURL
		if imageURL == "" {
			imageURL = fallbackEventImage
		}

		vms = append(vms, vm.EventViewModel{
			Title:           e.Title,
			DateLabel:       e.DateLabel,
			Location:        e.Location,
			DescriptionHTML: DescriptionHTML(e.Description),
			ImageURL:        imageURL,
		})
	}
	return vms
}

// toShowcaseViewModels converts domain ShowcaseImages to ShowcaseViewModels.
func toShowcaseViewModels(images []model.ShowcaseImage) []vm.ShowcaseViewModel {
	vms := make([]vm.ShowcaseViewModel, 0, len(images))
	for _, img := range images {
		vms = append(vms, vm.ShowcaseViewModel{
			ImageURL: img.ImageURL,
			Caption:  img.Caption,
		})
	}
	return vms
}

// toShopViewModel converts the catalog to product cards. An empty catalog
// yields placeholder cards so the grid is never empty.
func toShopViewModel(products []model.Product, locale language.Tag) vm.ShopViewModel {
	if len(products) == 0 {
		cards := make([]vm.ProductCardViewModel, placeholderCardCount)
		for i := range cards {
			cards[i].Placeholder = true
		}
		return vm.ShopViewModel{Products: cards}
	}

	cards := make([]vm.ProductCardViewModel, 0, len(products))
	for _, p := range products {
		cards = append(cards, toProductCardViewModel(p, locale))
	}
	return vm.ShopViewModel{Products: cards}
}

// toProductCardViewModel converts a domain Product to a ProductCardViewModel.
// A nil price renders no price text.
func toProductCardViewModel(p model.Product, locale language.Tag) vm.ProductCardViewModel {
	imageURL := p.ImageURL
	if imageURL == "" {
		imageURL = fallbackProductImage
	}

	var priceText string
	if p.Price != nil {
		priceText = FormatPrice(locale, *p.Price, p.Currency)
	}

	return vm.ProductCardViewModel{
		Name:        p.Name,
		Description: p.Description,
		PriceText:   priceText,
		ImageURL:    imageURL,
		Category:    string(p.Category),
		InStock:     p.InStock,
	}
}
