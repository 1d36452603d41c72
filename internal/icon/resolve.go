// Package icon resolves the free-form icon key stored with a benefit into
// one of a fixed set of presentation icons.
package icon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ID is a presentation icon. Surfaces map it to their own glyphs.
type ID string

const (
	Money         ID = "money"
	Health        ID = "health"
	Training      ID = "training"
	Education     ID = "education"
	Travel        ID = "travel"
	Time          ID = "time"
	Parking       ID = "parking"
	Entertainment ID = "entertainment"
	Favorite      ID = "favorite"
	Housing       ID = "housing"
	Check         ID = "check"
)

// Placeholder is the key the structured editors used to prefill new
// benefit rows with. It carries no meaning of its own, so the benefit text
// decides the icon instead.
const Placeholder = "star"

var all = []ID{Money, Health, Training, Education, Travel, Time, Parking, Entertainment, Favorite, Housing, Check}

// All lists every icon in a stable order.
func All() []ID {
	out := make([]ID, len(all))
	copy(out, all)
	return out
}

func Valid(id ID) bool {
	for _, v := range all {
		if v == id {
			return true
		}
	}
	return false
}

var (
	exactKeys    = map[string]ID{}
	strippedKeys = map[string]ID{}
)

func init() {
	for _, g := range keywordGroups {
		for _, k := range g.keys {
			exact := normalizeKey(k)
			if _, ok := exactKeys[exact]; !ok {
				exactKeys[exact] = g.id
			}
			stripped := stripKey(exact)
			if _, ok := strippedKeys[stripped]; !ok {
				strippedKeys[stripped] = g.id
			}
		}
	}
}

// Resolve picks the icon for a benefit. The key is advisory: it is looked up
// in the keyword table first as typed, then without diacritics and
// punctuation. The placeholder key falls back to scanning text for
// Vietnamese keywords. Anything unrecognised resolves to Check.
func Resolve(key, text string) ID {
	k := normalizeKey(key)
	if k == "" {
		return Check
	}
	if id, ok := exactKeys[k]; ok {
		return id
	}
	if id, ok := strippedKeys[stripKey(k)]; ok {
		return id
	}
	if k == Placeholder {
		return fromText(text)
	}
	return Check
}

func fromText(text string) ID {
	t := strings.ToLower(norm.NFC.String(text))
	for _, f := range textFallbacks {
		for _, kw := range f.keywords {
			if strings.Contains(t, kw) {
				return f.id
			}
		}
	}
	return Check
}

func normalizeKey(s string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFC.String(s)))
}

// stripKey removes diacritics and punctuation: "Lương-tháng_13!" becomes
// "luong thang 13".
func stripKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	// đ has no combining form, so NFD leaves it alone.
	result = strings.NewReplacer("đ", "d", "Đ", "d").Replace(result)

	var b strings.Builder
	for _, r := range result {
		switch {
		case r == '_' || r == '-' || r == '/':
			b.WriteRune(' ')
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
