package country

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FormatSummary renders the country record and cultural fact into the fixed
// multi-line answer template. The field order is part of the agent's
// contract with its callers.
func FormatSummary(r *Record, fact string) string {
	code := r.CCA2
	if code == "" {
		code = r.CCA3
	}

	capital := joinOrNA(r.Capital)

	var languages []string
	for _, l := range r.Languages {
		languages = append(languages, l)
	}
	sort.Strings(languages)

	var currencies []string
	for _, c := range r.Currencies {
		if c.Name == "" {
			continue
		}
		if c.Symbol != "" {
			currencies = append(currencies, fmt.Sprintf("%s (%s)", c.Name, c.Symbol))
		} else {
			currencies = append(currencies, c.Name)
		}
	}
	sort.Strings(currencies)

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n", r.DisplayName(), code)
	fmt.Fprintf(&b, "- Capital: %s\n", capital)
	fmt.Fprintf(&b, "- Region: %s (%s)\n", orNA(r.Region), orNA(r.Subregion))
	fmt.Fprintf(&b, "- Population: %s\n", formatPopulation(r.Population))
	fmt.Fprintf(&b, "- Languages: %s\n", joinOrNA(languages))
	fmt.Fprintf(&b, "- Currencies: %s\n", joinOrNA(currencies))
	fmt.Fprintf(&b, "- Timezones: %s\n", joinOrNA(r.Timezones))
	fmt.Fprintf(&b, "\nCulture fact: %s", fact)

	return b.String()
}

// formatPopulation renders a population count with thousands separators.
func formatPopulation(n int64) string {
	if n <= 0 {
		return "N/A"
	}

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return "N/A"
	}
	return strings.Join(values, ", ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
