package plural

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/lingo/core/form"
	"github.com/dmitrymomot/lingo/core/locale"
)

// Rule maps the operands of a number to a plural category.
// Rules are pure and total over every Operands value.
type Rule func(Operands) form.Category

// buildTable inverts a family -> tags map. A tag listed under two families is
// a programming error and stops the process at startup.
func buildTable(families map[string][]string) map[string]string {
	table := make(map[string]string)
	for family, tags := range families {
		for _, tag := range tags {
			if existing, ok := table[tag]; ok {
				panic(fmt.Sprintf("plural: tag %q assigned to both %q and %q", tag, existing, family))
			}
			table[tag] = family
		}
	}
	return table
}

// Family returns the rule family name used for the locale and kind, and
// whether the language is known. Region specific entries (pt-PT) take
// precedence over the language entry.
func Family(loc locale.Locale, kind form.Kind) (string, bool) {
	languages := cardinalLanguages
	if kind == form.KindOrdinal {
		languages = ordinalLanguages
	}

	for _, candidate := range loc.Fallbacks() {
		if family, ok := languages[candidate.String()]; ok {
			return family, true
		}
	}
	if kind == form.KindOrdinal {
		// Every language with cardinal rules but no ordinal distinctions uses "other".
		if _, ok := cardinalLanguages[loc.Language()]; ok {
			return "other", true
		}
	}
	return "other", false
}

// RuleFor returns the rule applied for the locale and kind.
// Unknown languages get a rule that always answers Other.
func RuleFor(loc locale.Locale, kind form.Kind) Rule {
	family, _ := Family(loc, kind)
	if kind == form.KindOrdinal {
		return ordinalFamilies[family]
	}
	return cardinalFamilies[family]
}

// CategoryFor returns the grammatical category of n in the locale.
// kind selects cardinal (form.Cardinal result) or ordinal (form.Ordinal result);
// anything else is treated as cardinal. A nil number or an unknown language yields
// the Other category. Negative numbers are categorized by their absolute value.
func CategoryFor(n *Number, loc locale.Locale, kind form.Kind) form.Form {
	category := form.Other
	if n != nil {
		category = RuleFor(loc, kind)(n.Operands())
	}
	if kind == form.KindOrdinal {
		return category.Ordinal()
	}
	return category.Cardinal()
}

// Cardinal returns the cardinality category of n in the locale.
func Cardinal(n Number, loc locale.Locale) form.Cardinal {
	return RuleFor(loc, form.KindCardinal)(n.Operands()).Cardinal()
}

// Ordinal returns the ordinality category of n in the locale.
func Ordinal(n Number, loc locale.Locale) form.Ordinal {
	return RuleFor(loc, form.KindOrdinal)(n.Operands()).Ordinal()
}

// Families returns the names of all rule families for the kind.
func Families(kind form.Kind) []string {
	families := cardinalFamilies
	if kind == form.KindOrdinal {
		families = ordinalFamilies
	}
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	return names
}

// FamilyRule returns a rule by family name.
func FamilyRule(family string, kind form.Kind) (Rule, bool) {
	families := cardinalFamilies
	if kind == form.KindOrdinal {
		families = ordinalFamilies
	}
	r, ok := families[family]
	return r, ok
}

// sampleNumbers trigger every category of every family.
var sampleNumbers = func() []Number {
	var nums []Number
	for i := 0; i <= 200; i++ {
		nums = append(nums, MustParseNumber(strconv.Itoa(i)))
	}
	for _, s := range []string{
		"0.0", "0.1", "0.2", "0.3", "0.5", "1.0", "1.1", "1.2", "1.3", "1.5", "2.0", "2.1",
		"2.5", "3.4", "5.5", "10.0", "10.1", "10.11", "0.11", "0.01", "1.01", "1000", "1000000",
		"2000000", "1000000.0",
	} {
		nums = append(nums, MustParseNumber(s))
	}
	return nums
}()

// Forms returns the categories a language actually distinguishes, in canonical order.
// Useful for validating catalogs: a sub-translation keyed by a category the language
// never selects is dead text.
func Forms(loc locale.Locale, kind form.Kind) []form.Form {
	rule := RuleFor(loc, kind)
	seen := make(map[form.Category]bool)
	for _, n := range sampleNumbers {
		seen[rule(n.Operands())] = true
	}

	var forms []form.Form
	for _, c := range form.Categories {
		if !seen[c] {
			continue
		}
		if kind == form.KindOrdinal {
			forms = append(forms, c.Ordinal())
		} else {
			forms = append(forms, c.Cardinal())
		}
	}
	return forms
}
