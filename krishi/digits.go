package krishi

import "strings"

var bengaliDigits = [...]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// amountUnits are the unit tokens that qualify a numeral run for
// localization. Longest token first so কিলোগ্রাম wins over কেজি prefix-wise;
// ASCII tokens match case-insensitively.
var amountUnits = []string{"কিলোগ্রাম", "কেজি", "kg"}

// ToBengaliDigits replaces every ASCII digit with the corresponding Bengali
// glyph. All other characters pass through untouched.
func ToBengaliDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(bengaliDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToLatinDigits is the unconditional inverse of ToBengaliDigits, so amounts
// already expressed in Bengali digits can be computed on.
func ToLatinDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '০' && r <= '৯' {
			b.WriteRune('0' + (r - '০'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LocalizeAmounts rewrites every quantity of the form <numeral><spaces><unit>
// (for example "50 kg", "৫০ কেজি", "2000.50kg") so its digits match the
// requested language. Spacing between amount and unit is normalized to one
// space; the unit token itself is kept as written. Numeral runs without a
// qualifying unit token are left untouched.
func LocalizeAmounts(s string, lang Language) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(runes) {
		if !isDigitRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		start := i
		i = scanNumeral(runes, i)
		numeral := string(runes[start:i])

		j := i
		for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
			j++
		}
		unit, ok := matchUnit(runes, j)
		if !ok {
			b.WriteString(numeral)
			continue
		}

		amount := ToLatinDigits(numeral)
		if lang == LanguageBengali {
			amount = ToBengaliDigits(amount)
		}
		b.WriteString(amount)
		b.WriteRune(' ')
		b.WriteString(unit)
		i = j + len([]rune(unit))
	}
	return b.String()
}

// LocalizeAmountsAll applies LocalizeAmounts element-wise.
func LocalizeAmountsAll(items []string, lang Language) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = LocalizeAmounts(s, lang)
	}
	return out
}

func isDigitRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= '০' && r <= '৯')
}

// scanNumeral consumes a digit run starting at i, allowing one decimal point
// when digits follow it.
func scanNumeral(runes []rune, i int) int {
	for i < len(runes) && isDigitRune(runes[i]) {
		i++
	}
	if i+1 < len(runes) && runes[i] == '.' && isDigitRune(runes[i+1]) {
		i++
		for i < len(runes) && isDigitRune(runes[i]) {
			i++
		}
	}
	return i
}

// matchUnit reports the unit token starting at i, as written in the input.
func matchUnit(runes []rune, i int) (string, bool) {
	for _, u := range amountUnits {
		ur := []rune(u)
		if i+len(ur) > len(runes) {
			continue
		}
		cand := string(runes[i : i+len(ur)])
		if strings.EqualFold(cand, u) {
			return cand, true
		}
	}
	return "", false
}
