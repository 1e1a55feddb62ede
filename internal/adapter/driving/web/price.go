package web

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used for products that do not name a currency.
const DefaultCurrency = "INR"

// symbolAfterLanguages are the base languages whose CLDR currency pattern
// puts the symbol after the amount, separated by a no-break space.
var symbolAfterLanguages = map[language.Base]bool{}

func init() {
	for _, tag := range []string{
		"bg", "cs", "da", "de", "el", "es", "et", "fi", "fr", "hr", "hu", "it",
		"lt", "lv", "nb", "nn", "no", "pl", "pt", "ro", "ru", "sk", "sl", "sv", "uk",
	} {
		symbolAfterLanguages[language.MustParseBase(tag)] = true
	}
}

// symbolAfter reports whether locale writes the currency symbol after the
// amount. Portuguese without a region means Brazil, which keeps the symbol
// in front.
func symbolAfter(locale language.Tag) bool {
	base, _ := locale.Base()
	if base.String() == "pt" {
		region, _ := locale.Region()
		return region.String() != "BR"
	}
	return symbolAfterLanguages[base]
}

// FormatPrice formats amount as a currency string for the given locale with no
// fraction digits, e.g. 1499 INR in en-IN is "₹1,499" and 1499 EUR in de-DE is
// "1.499 €". The symbol is the locale's narrow symbol for the currency. A code
// x/text does not recognize is used verbatim, upper-cased, in place of the
// symbol.
func FormatPrice(locale language.Tag, amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}

	p := message.NewPrinter(locale)

	symbol := code
	if unit, err := currency.ParseISO(code); err == nil {
		symbol = p.Sprint(currency.NarrowSymbol(unit))
	}

	digits := p.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))

	if symbolAfter(locale) {
		return digits + "\u00a0" + symbol
	}
	if strings.HasPrefix(digits, "-") {
		return "-" + symbol + strings.TrimPrefix(digits, "-")
	}
	return symbol + digits
}
