// Package universe lists the symbols the desk knows about.
package universe

import "strings"

var equity = []string{"RELIANCE", "HDFC", "TCS", "INFY", "ICICI", "BHARTIARTL", "HCLTECH"}

var indices = []string{"NIFTY", "BANKNIFTY", "FINNIFTY", "SENSEX", "MIDCAP", "BAKEX"}

var mcx = []string{
	"GOLD", "GOLDM", "GOLDGUINEA", "GOLDPETAL", "GOLDPETALDEL",
	"SILVER", "SILVERM", "SILVERMIC", "SILVER1000",
	"CRUDEOIL", "CRUDEOILM", "NATURALGAS", "NATURALGASM",
}

// Equity returns the default NSE cash-segment universe.
func Equity() []string { return clone(equity) }

// Indices returns the index underlyings offered for options.
func Indices() []string { return clone(indices) }

// MCX returns the commodity symbols offered for commodity trading.
func MCX() []string { return clone(mcx) }

// Parse splits a comma separated list into upper-case symbols, dropping blanks.
func Parse(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Distinct trims symbols and drops blanks and repeats, keeping first-seen order.
func Distinct(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
