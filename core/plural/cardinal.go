package plural

import "github.com/dmitrymomot/lingo/core/form"

// Cardinal rule families. Each family is a pure function over operands and follows
// https://www.unicode.org/cldr/charts/latest/supplemental/language_plural_rules.html
var cardinalFamilies = map[string]Rule{
	"other":      otherOnly,
	"germanic":   cardinalGermanic,
	"one":        cardinalOne,
	"indic":      cardinalIndic,
	"french":     cardinalFrench,
	"armenian":   cardinalArmenian,
	"romance":    cardinalRomance,
	"spanish":    cardinalSpanish,
	"zero-one":   cardinalZeroOne,
	"tamazight":  cardinalTamazight,
	"sinhala":    cardinalSinhala,
	"danish":     cardinalDanish,
	"icelandic":  cardinalIcelandic,
	"macedonian": cardinalMacedonian,
	"filipino":   cardinalFilipino,
	"latvian":    cardinalLatvian,
	"lithuanian": cardinalLithuanian,
	"russian":    cardinalRussian,
	"belarusian": cardinalBelarusian,
	"serbian":    cardinalSerbian,
	"czech":      cardinalCzech,
	"polish":     cardinalPolish,
	"slovenian":  cardinalSlovenian,
	"sorbian":    cardinalSorbian,
	"romanian":   cardinalRomanian,
	"arabic":     cardinalArabic,
	"hebrew":     cardinalHebrew,
	"welsh":      cardinalWelsh,
	"irish":      cardinalIrish,
	"gaelic":     cardinalGaelic,
	"breton":     cardinalBreton,
	"manx":       cardinalManx,
	"maltese":    cardinalMaltese,
	"langi":      cardinalLangi,
	"colognian":  cardinalColognian,
	"tachelhit":  cardinalTachelhit,
}

// cardinalLanguages maps language (or language-region) tags to cardinal families.
var cardinalLanguages = buildTable(map[string][]string{
	"other": {"bm", "bo", "dz", "hnj", "id", "ig", "ii", "ja", "jbo", "jv", "kde", "kea", "km", "ko",
		"lkt", "lo", "ms", "my", "nqo", "osa", "sah", "ses", "sg", "su", "th", "to", "tpi", "vi",
		"wo", "yo", "yue", "zh"},
	"germanic": {"ast", "de", "en", "et", "fi", "fy", "gl", "ia", "io", "lij", "nl", "sc", "scn",
		"sv", "sw", "ur", "yi"},
	"one": {"af", "an", "asa", "az", "bal", "bem", "bez", "bg", "brx", "ce", "cgg", "chr", "ckb",
		"dv", "ee", "el", "eo", "eu", "fo", "fur", "gsw", "ha", "haw", "hu", "jgo", "jmc", "ka",
		"kaj", "kcg", "kk", "kkj", "kl", "ks", "ksb", "ku", "ky", "lb", "lg", "mas", "mgo", "ml",
		"mn", "mr", "nah", "nb", "nd", "ne", "nn", "nnh", "nr", "ny", "nyn", "om", "or", "os",
		"pap", "ps", "rm", "rof", "rwk", "saq", "sd", "sdh", "seh", "sn", "so", "sq", "ss", "ssy",
		"st", "syr", "ta", "te", "teo", "tig", "tk", "tn", "tr", "ts", "ug", "uz", "ve", "vo",
		"vun", "wae", "xh", "xog"},
	"indic":      {"am", "as", "bn", "doi", "fa", "gu", "hi", "kn", "pcm", "zu"},
	"french":     {"fr", "pt"},
	"armenian":   {"ff", "hy", "kab"},
	"romance":    {"ca", "it", "pt-PT", "vec"},
	"spanish":    {"es"},
	"zero-one":   {"ak", "bho", "guw", "ln", "mg", "nso", "pa", "ti", "wa"},
	"tamazight":  {"tzm"},
	"sinhala":    {"si"},
	"danish":     {"da"},
	"icelandic":  {"is"},
	"macedonian": {"mk"},
	"filipino":   {"fil"},
	"latvian":    {"lv", "prg"},
	"lithuanian": {"lt"},
	"russian":    {"ru", "uk"},
	"belarusian": {"be"},
	"serbian":    {"bs", "hr", "sr"},
	"czech":      {"cs", "sk"},
	"polish":     {"pl"},
	"slovenian":  {"sl"},
	"sorbian":    {"dsb", "hsb"},
	"romanian":   {"ro"},
	"arabic":     {"ar", "ars"},
	"hebrew":     {"he"},
	"welsh":      {"cy"},
	"irish":      {"ga"},
	"gaelic":     {"gd"},
	"breton":     {"br"},
	"manx":       {"gv"},
	"maltese":    {"mt"},
	"langi":      {"lag"},
	"colognian":  {"ksh"},
	"tachelhit":  {"shi"},
})

func otherOnly(Operands) form.Category { return form.Other }

// one: i = 1 and v = 0
func cardinalGermanic(o Operands) form.Category {
	if o.I == 1 && o.V == 0 {
		return form.One
	}
	return form.Other
}

// one: n = 1
func cardinalOne(o Operands) form.Category {
	if o.nIs(1) {
		return form.One
	}
	return form.Other
}

// one: i = 0 or n = 1
func cardinalIndic(o Operands) form.Category {
	if o.I == 0 || o.nIs(1) {
		return form.One
	}
	return form.Other
}

// one: i = 0,1; many: e = 0 and i != 0 and i % 1000000 = 0 and v = 0
func cardinalFrench(o Operands) form.Category {
	switch {
	case o.I == 0 || o.I == 1:
		return form.One
	case o.millions():
		return form.Many
	}
	return form.Other
}

// one: i = 0,1
func cardinalArmenian(o Operands) form.Category {
	if o.I == 0 || o.I == 1 {
		return form.One
	}
	return form.Other
}

// one: i = 1 and v = 0; many: e = 0 and i != 0 and i % 1000000 = 0 and v = 0
func cardinalRomance(o Operands) form.Category {
	switch {
	case o.I == 1 && o.V == 0:
		return form.One
	case o.millions():
		return form.Many
	}
	return form.Other
}

// one: n = 1; many: e = 0 and i != 0 and i % 1000000 = 0 and v = 0
func cardinalSpanish(o Operands) form.Category {
	switch {
	case o.nIs(1):
		return form.One
	case o.millions():
		return form.Many
	}
	return form.Other
}

// one: n = 0..1
func cardinalZeroOne(o Operands) form.Category {
	if o.nIn(0, 1) {
		return form.One
	}
	return form.Other
}

// one: n = 0..1 or n = 11..99
func cardinalTamazight(o Operands) form.Category {
	if o.nIn(0, 1) || o.nIn(11, 99) {
		return form.One
	}
	return form.Other
}

// one: n = 0,1 or i = 0 and f = 1
func cardinalSinhala(o Operands) form.Category {
	if o.nIs(0, 1) || (o.I == 0 && o.F == 1) {
		return form.One
	}
	return form.Other
}

// one: n = 1 or t != 0 and i = 0,1
func cardinalDanish(o Operands) form.Category {
	if o.nIs(1) || (o.T != 0 && (o.I == 0 || o.I == 1)) {
		return form.One
	}
	return form.Other
}

// one: t = 0 and i % 10 = 1 and i % 100 != 11 or t % 10 = 1 and t % 100 != 11
func cardinalIcelandic(o Operands) form.Category {
	if (o.T == 0 && o.I%10 == 1 && o.I%100 != 11) || (o.T%10 == 1 && o.T%100 != 11) {
		return form.One
	}
	return form.Other
}

// one: v = 0 and i % 10 = 1 and i % 100 != 11 or f % 10 = 1 and f % 100 != 11
func cardinalMacedonian(o Operands) form.Category {
	if (o.V == 0 && o.I%10 == 1 && o.I%100 != 11) || (o.F%10 == 1 && o.F%100 != 11) {
		return form.One
	}
	return form.Other
}

// one: v = 0 and i = 1,2,3 or v = 0 and i % 10 != 4,6,9 or v != 0 and f % 10 != 4,6,9
func cardinalFilipino(o Operands) form.Category {
	switch {
	case o.V == 0 && anyOf(o.I, 1, 2, 3):
		return form.One
	case o.V == 0 && !o.iModIs(10, 4, 6, 9):
		return form.One
	case o.V != 0 && !o.fModIs(10, 4, 6, 9):
		return form.One
	}
	return form.Other
}

// zero: n % 10 = 0 or n % 100 = 11..19 or v = 2 and f % 100 = 11..19
// one: n % 10 = 1 and n % 100 != 11 or v = 2 and f % 10 = 1 and f % 100 != 11 or v != 2 and f % 10 = 1
func cardinalLatvian(o Operands) form.Category {
	switch {
	case o.nModIs(10, 0) || o.nModIn(100, 11, 19) || (o.V == 2 && o.fModIn(100, 11, 19)):
		return form.Zero
	case o.nModIs(10, 1) && !o.nModIs(100, 11),
		o.V == 2 && o.fModIs(10, 1) && !o.fModIs(100, 11),
		o.V != 2 && o.fModIs(10, 1):
		return form.One
	}
	return form.Other
}

// one: n % 10 = 1 and n % 100 != 11..19; few: n % 10 = 2..9 and n % 100 != 11..19; many: f != 0
func cardinalLithuanian(o Operands) form.Category {
	switch {
	case o.nModIs(10, 1) && !o.nModIn(100, 11, 19):
		return form.One
	case o.nModIn(10, 2, 9) && !o.nModIn(100, 11, 19):
		return form.Few
	case o.F != 0:
		return form.Many
	}
	return form.Other
}

// one: v = 0 and i % 10 = 1 and i % 100 != 11
// few: v = 0 and i % 10 = 2..4 and i % 100 != 12..14
// many: v = 0 and i % 10 = 0 or v = 0 and i % 10 = 5..9 or v = 0 and i % 100 = 11..14
func cardinalRussian(o Operands) form.Category {
	if o.V != 0 {
		return form.Other
	}
	switch {
	case o.I%10 == 1 && o.I%100 != 11:
		return form.One
	case o.iModIn(10, 2, 4) && !o.iModIn(100, 12, 14):
		return form.Few
	case o.I%10 == 0 || o.iModIn(10, 5, 9) || o.iModIn(100, 11, 14):
		return form.Many
	}
	return form.Other
}

// one: n % 10 = 1 and n % 100 != 11
// few: n % 10 = 2..4 and n % 100 != 12..14
// many: n % 10 = 0 or n % 10 = 5..9 or n % 100 = 11..14
func cardinalBelarusian(o Operands) form.Category {
	switch {
	case o.nModIs(10, 1) && !o.nModIs(100, 11):
		return form.One
	case o.nModIn(10, 2, 4) && !o.nModIn(100, 12, 14):
		return form.Few
	case o.nModIs(10, 0) || o.nModIn(10, 5, 9) || o.nModIn(100, 11, 14):
		return form.Many
	}
	return form.Other
}

// one: v = 0 and i % 10 = 1 and i % 100 != 11 or f % 10 = 1 and f % 100 != 11
// few: v = 0 and i % 10 = 2..4 and i % 100 != 12..14 or f % 10 = 2..4 and f % 100 != 12..14
func cardinalSerbian(o Operands) form.Category {
	switch {
	case (o.V == 0 && o.I%10 == 1 && o.I%100 != 11) || (o.F%10 == 1 && o.F%100 != 11):
		return form.One
	case (o.V == 0 && o.iModIn(10, 2, 4) && !o.iModIn(100, 12, 14)) ||
		(o.fModIn(10, 2, 4) && !o.fModIn(100, 12, 14)):
		return form.Few
	}
	return form.Other
}

// one: i = 1 and v = 0; few: i = 2..4 and v = 0; many: v != 0
func cardinalCzech(o Operands) form.Category {
	switch {
	case o.I == 1 && o.V == 0:
		return form.One
	case inRange(o.I, 2, 4) && o.V == 0:
		return form.Few
	case o.V != 0:
		return form.Many
	}
	return form.Other
}

// one: i = 1 and v = 0
// few: v = 0 and i % 10 = 2..4 and i % 100 != 12..14
// many: v = 0 and i != 1 and i % 10 = 0..1 or v = 0 and i % 10 = 5..9 or v = 0 and i % 100 = 12..14
func cardinalPolish(o Operands) form.Category {
	switch {
	case o.I == 1 && o.V == 0:
		return form.One
	case o.V != 0:
		return form.Other
	case o.iModIn(10, 2, 4) && !o.iModIn(100, 12, 14):
		return form.Few
	case (o.I != 1 && o.iModIn(10, 0, 1)) || o.iModIn(10, 5, 9) || o.iModIn(100, 12, 14):
		return form.Many
	}
	return form.Other
}

// one: v = 0 and i % 100 = 1; two: v = 0 and i % 100 = 2; few: v = 0 and i % 100 = 3..4 or v != 0
func cardinalSlovenian(o Operands) form.Category {
	switch {
	case o.V == 0 && o.I%100 == 1:
		return form.One
	case o.V == 0 && o.I%100 == 2:
		return form.Two
	case (o.V == 0 && o.iModIn(100, 3, 4)) || o.V != 0:
		return form.Few
	}
	return form.Other
}

// one: v = 0 and i % 100 = 1 or f % 100 = 1
// two: v = 0 and i % 100 = 2 or f % 100 = 2
// few: v = 0 and i % 100 = 3..4 or f % 100 = 3..4
func cardinalSorbian(o Operands) form.Category {
	switch {
	case (o.V == 0 && o.I%100 == 1) || o.F%100 == 1:
		return form.One
	case (o.V == 0 && o.I%100 == 2) || o.F%100 == 2:
		return form.Two
	case (o.V == 0 && o.iModIn(100, 3, 4)) || o.fModIn(100, 3, 4):
		return form.Few
	}
	return form.Other
}

// one: i = 1 and v = 0; few: v != 0 or n = 0 or n != 1 and n % 100 = 1..19
func cardinalRomanian(o Operands) form.Category {
	switch {
	case o.I == 1 && o.V == 0:
		return form.One
	case o.V != 0 || o.nIs(0) || (!o.nIs(1) && o.nModIn(100, 1, 19)):
		return form.Few
	}
	return form.Other
}

// zero: n = 0; one: n = 1; two: n = 2; few: n % 100 = 3..10; many: n % 100 = 11..99
func cardinalArabic(o Operands) form.Category {
	switch {
	case o.nIs(0):
		return form.Zero
	case o.nIs(1):
		return form.One
	case o.nIs(2):
		return form.Two
	case o.nModIn(100, 3, 10):
		return form.Few
	case o.nModIn(100, 11, 99):
		return form.Many
	}
	return form.Other
}

// one: i = 1 and v = 0 or i = 0 and v != 0; two: i = 2 and v = 0
func cardinalHebrew(o Operands) form.Category {
	switch {
	case (o.I == 1 && o.V == 0) || (o.I == 0 && o.V != 0):
		return form.One
	case o.I == 2 && o.V == 0:
		return form.Two
	}
	return form.Other
}

// zero: n = 0; one: n = 1; two: n = 2; few: n = 3; many: n = 6
func cardinalWelsh(o Operands) form.Category {
	switch {
	case o.nIs(0):
		return form.Zero
	case o.nIs(1):
		return form.One
	case o.nIs(2):
		return form.Two
	case o.nIs(3):
		return form.Few
	case o.nIs(6):
		return form.Many
	}
	return form.Other
}

// one: n = 1; two: n = 2; few: n = 3..6; many: n = 7..10
func cardinalIrish(o Operands) form.Category {
	switch {
	case o.nIs(1):
		return form.One
	case o.nIs(2):
		return form.Two
	case o.nIn(3, 6):
		return form.Few
	case o.nIn(7, 10):
		return form.Many
	}
	return form.Other
}

// one: n = 1,11; two: n = 2,12; few: n = 3..10,13..19
func cardinalGaelic(o Operands) form.Category {
	switch {
	case o.nIs(1, 11):
		return form.One
	case o.nIs(2, 12):
		return form.Two
	case o.nIn(3, 10) || o.nIn(13, 19):
		return form.Few
	}
	return form.Other
}

// one: n % 10 = 1 and n % 100 != 11,71,91
// two: n % 10 = 2 and n % 100 != 12,72,92
// few: n % 10 = 3..4,9 and n % 100 != 10..19,70..79,90..99
// many: n != 0 and n % 1000000 = 0
func cardinalBreton(o Operands) form.Category {
	switch {
	case o.nModIs(10, 1) && !o.nModIs(100, 11, 71, 91):
		return form.One
	case o.nModIs(10, 2) && !o.nModIs(100, 12, 72, 92):
		return form.Two
	case (o.nModIn(10, 3, 4) || o.nModIs(10, 9)) &&
		!(o.nModIn(100, 10, 19) || o.nModIn(100, 70, 79) || o.nModIn(100, 90, 99)):
		return form.Few
	case o.integral() && o.I != 0 && o.I%1000000 == 0:
		return form.Many
	}
	return form.Other
}

// one: v = 0 and i % 10 = 1; two: v = 0 and i % 10 = 2
// few: v = 0 and i % 100 = 0,20,40,60,80; many: v != 0
func cardinalManx(o Operands) form.Category {
	switch {
	case o.V == 0 && o.I%10 == 1:
		return form.One
	case o.V == 0 && o.I%10 == 2:
		return form.Two
	case o.V == 0 && o.iModIs(100, 0, 20, 40, 60, 80):
		return form.Few
	case o.V != 0:
		return form.Many
	}
	return form.Other
}

// one: n = 1; two: n = 2; few: n = 0 or n % 100 = 3..10; many: n % 100 = 11..19
func cardinalMaltese(o Operands) form.Category {
	switch {
	case o.nIs(1):
		return form.One
	case o.nIs(2):
		return form.Two
	case o.nIs(0) || o.nModIn(100, 3, 10):
		return form.Few
	case o.nModIn(100, 11, 19):
		return form.Many
	}
	return form.Other
}

// zero: n = 0; one: i = 0,1 and n != 0
func cardinalLangi(o Operands) form.Category {
	switch {
	case o.nIs(0):
		return form.Zero
	case o.I == 0 || o.I == 1:
		return form.One
	}
	return form.Other
}

// zero: n = 0; one: n = 1
func cardinalColognian(o Operands) form.Category {
	switch {
	case o.nIs(0):
		return form.Zero
	case o.nIs(1):
		return form.One
	}
	return form.Other
}

// one: i = 0 or n = 1; few: n = 2..10
func cardinalTachelhit(o Operands) form.Category {
	switch {
	case o.I == 0 || o.nIs(1):
		return form.One
	case o.nIn(2, 10):
		return form.Few
	}
	return form.Other
}
