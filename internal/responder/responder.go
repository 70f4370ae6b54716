// Package responder classifies visitor messages by keyword and picks a canned
// Turkish reply for the matched category.
package responder

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// RandomSource returns a float in [0, 1).
type RandomSource func() float64

// Responder picks replies. It is safe for concurrent use as long as its
// RandomSource is.
type Responder struct {
	random RandomSource
}

// New returns a Responder drawing from random, or from math/rand/v2 when
// random is nil.
func New(random RandomSource) *Responder {
	if random == nil {
		random = rand.Float64
	}
	return &Responder{random: random}
}

// Classify returns the first category, in priority order, with a keyword
// contained in text. A message mentioning both a price and a phone is pricing.
func Classify(text string) Category {
	t := normalize(text)
	for _, e := range catalog {
		if containsAny(t, e.keywords) {
			return e.category
		}
	}
	return Default
}

// Matches returns every category with a keyword hit, in priority order.
// Classify(text) is always the first element, or Default when none matched.
func Matches(text string) []Category {
	t := normalize(text)
	var out []Category
	for _, e := range catalog {
		if containsAny(t, e.keywords) {
			out = append(out, e.category)
		}
	}
	if len(out) == 0 {
		return []Category{Default}
	}
	return out
}

// Respond picks one reply of c uniformly at random.
func (r *Responder) Respond(c Category) string {
	responses := lookup(c).responses
	i := int(r.random() * float64(len(responses)))
	// Guard against a source returning exactly 1 or a negative value.
	if i >= len(responses) {
		i = len(responses) - 1
	}
	if i < 0 {
		i = 0
	}
	return responses[i]
}

// Reply classifies text and picks a reply for it.
func (r *Responder) Reply(text string) (Category, string) {
	c := Classify(text)
	return c, r.Respond(c)
}

// normalize lower-cases text the way browsers do for Turkish input: "İ"
// becomes "i̇" under the root locale, and the combining dot is dropped so
// "İletişim" matches "iletişim".
func normalize(text string) string {
	t := cases.Lower(language.Und).String(norm.NFC.String(text))
	return strings.ReplaceAll(t, "i\u0307", "i")
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
