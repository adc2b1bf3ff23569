package domain

type Currency struct {
	Code   string
	Symbol string
}

func (c Currency) String() string {
	return c.Symbol + " " + c.Code
}

var currencies = [...]Currency{
	{Code: "INR", Symbol: "₹"},
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
}

// DefaultCurrency is the first entry of the selector.
var DefaultCurrency = currencies[0]

func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies[:])
	return out
}

// CurrencyFor looks a currency up by its code, e.g. "USD".
func CurrencyFor(code string) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
