package plural

import "github.com/dmitrymomot/lingo/core/form"

// Ordinal rule families. Languages absent from ordinalLanguages use "other" for every number.
var ordinalFamilies = map[string]Rule{
	"other":       otherOnly,
	"english":     ordinalEnglish,
	"one":         ordinalOne,
	"swedish":     ordinalSwedish,
	"italian":     ordinalItalian,
	"catalan":     ordinalCatalan,
	"welsh":       ordinalWelsh,
	"hungarian":   ordinalHungarian,
	"georgian":    ordinalGeorgian,
	"kazakh":      ordinalKazakh,
	"macedonian":  ordinalMacedonian,
	"azerbaijani": ordinalAzerbaijani,
	"hindi":       ordinalHindi,
	"bengali":     ordinalBengali,
	"marathi":     ordinalMarathi,
	"nepali":      ordinalNepali,
	"albanian":    ordinalAlbanian,
	"ukrainian":   ordinalUkrainian,
	"belarusian":  ordinalBelarusian,
	"turkmen":     ordinalTurkmen,
	"gaelic":      ordinalGaelic,
}

var ordinalLanguages = buildTable(map[string][]string{
	"english":     {"en"},
	"one":         {"fil", "fr", "ga", "hy", "lo", "ms", "ro", "vi"},
	"swedish":     {"sv"},
	"italian":     {"it", "sc", "scn"},
	"catalan":     {"ca"},
	"welsh":       {"cy"},
	"hungarian":   {"hu"},
	"georgian":    {"ka"},
	"kazakh":      {"kk"},
	"macedonian":  {"mk"},
	"azerbaijani": {"az"},
	"hindi":       {"gu", "hi"},
	"bengali":     {"as", "bn"},
	"marathi":     {"mr"},
	"nepali":      {"ne"},
	"albanian":    {"sq"},
	"ukrainian":   {"uk"},
	"belarusian":  {"be"},
	"turkmen":     {"tk"},
	"gaelic":      {"gd"},
})

// one: n % 10 = 1 and n % 100 != 11; two: n % 10 = 2 and n % 100 != 12; few: n % 10 = 3 and n % 100 != 13
func ordinalEnglish(o Operands) form.Category {
	switch {
	case o.nModIs(10, 1) && !o.nModIs(100, 11):
		return form.One
	case o.nModIs(10, 2) && !o.nModIs(100, 12):
		return form.Two
	case o.nModIs(10, 3) && !o.nModIs(100, 13):
		return form.Few
	}
	return form.Other
}

// one: n = 1
func ordinalOne(o Operands) form.Category {
	if o.nIs(1) {
		return form.One
	}
	return form.Other
}

// one: n % 10 = 1,2 and n % 100 != 11,12
func ordinalSwedish(o Operands) form.Category {
	if o.nModIs(10, 1, 2) && !o.nModIs(100, 11, 12) {
		return form.One
	}
	return form.Other
}

// many: n = 11,8,80,800
func ordinalItalian(o Operands) form.Category {
	if o.nIs(11, 8, 80, 800) {
		return form.Many
	}
	return form.Other
}

// one: n = 1,3; two: n = 2; few: n = 4
func ordinalCatalan(o Operands) form.Category {
	switch {
	case o.nIs(1, 3):
		return form.One
	case o.nIs(2):
		return form.Two
	case o.nIs(4):
		return form.Few
	}
	return form.Other
}

// zero: n = 0,7,8,9; one: n = 1; two: n = 2; few: n = 3,4; many: n = 5,6
func ordinalWelsh(o Operands) form.Category {
	switch {
	case o.nIs(0, 7, 8, 9):
		return form.Zero
	case o.nIs(1):
		return form.One
	case o.nIs(2):
		return form.Two
	case o.nIs(3, 4):
		return form.Few
	case o.nIs(5, 6):
		return form.Many
	}
	return form.Other
}

// one: n = 1,5
func ordinalHungarian(o Operands) form.Category {
	if o.nIs(1, 5) {
		return form.One
	}
	return form.Other
}

// one: i = 1; many: i = 0 or i % 100 = 2..20,40,60,80
func ordinalGeorgian(o Operands) form.Category {
	switch {
	case o.I == 1:
		return form.One
	case o.I == 0 || o.iModIn(100, 2, 20) || o.iModIs(100, 40, 60, 80):
		return form.Many
	}
	return form.Other
}

// many: n % 10 = 6 or n % 10 = 9 or n % 10 = 0 and n != 0
func ordinalKazakh(o Operands) form.Category {
	if o.nModIs(10, 6, 9) || (o.nModIs(10, 0) && !o.nIs(0)) {
		return form.Many
	}
	return form.Other
}

// one: i % 10 = 1 and i % 100 != 11; two: i % 10 = 2 and i % 100 != 12
// many: i % 10 = 7,8 and i % 100 != 17,18
func ordinalMacedonian(o Operands) form.Category {
	switch {
	case o.I%10 == 1 && o.I%100 != 11:
		return form.One
	case o.I%10 == 2 && o.I%100 != 12:
		return form.Two
	case o.iModIs(10, 7, 8) && !o.iModIs(100, 17, 18):
		return form.Many
	}
	return form.Other
}

// one: i % 10 = 1,2,5,7,8 or i % 100 = 20,50,70,80
// few: i % 10 = 3,4 or i % 1000 = 100,200,300,400,500,600,700,800,900
// many: i = 0 or i % 10 = 6 or i % 100 = 40,60,90
func ordinalAzerbaijani(o Operands) form.Category {
	switch {
	case o.iModIs(10, 1, 2, 5, 7, 8) || o.iModIs(100, 20, 50, 70, 80):
		return form.One
	case o.iModIs(10, 3, 4) || o.iModIs(1000, 100, 200, 300, 400, 500, 600, 700, 800, 900):
		return form.Few
	case o.I == 0 || o.I%10 == 6 || o.iModIs(100, 40, 60, 90):
		return form.Many
	}
	return form.Other
}

// one: n = 1; two: n = 2,3; few: n = 4; many: n = 6
func ordinalHindi(o Operands) form.Category {
	switch {
	case o.nIs(1):
		return form.One
	case o.nIs(2, 3):
		return form.Two
	case o.nIs(4):
		return form.Few
	case o.nIs(6):
		return form.Many
	}
	return form.Other
}

// one: n = 1,5,7,8,9,10; two: n = 2,3; few: n = 4; many: n = 6
func ordinalBengali(o Operands) form.Category {
	switch {
	case o.nIs(1, 5, 7, 8, 9, 10):
		return form.One
	case o.nIs(2, 3):
		return form.Two
	case o.nIs(4):
		return form.Few
	case o.nIs(6):
		return form.Many
	}
	return form.Other
}

// one: n = 1; two: n = 2,3; few: n = 4
func ordinalMarathi(o Operands) form.Category {
	switch {
	case o.nIs(1):
		return form.One
	case o.nIs(2, 3):
		return form.Two
	case o.nIs(4):
		return form.Few
	}
	return form.Other
}

// one: n = 1..4
func ordinalNepali(o Operands) form.Category {
	if o.nIn(1, 4) {
		return form.One
	}
	return form.Other
}

// one: n = 1; many: n % 10 = 4 and n % 100 != 14
func ordinalAlbanian(o Operands) form.Category {
	switch {
	case o.nIs(1):
		return form.One
	case o.nModIs(10, 4) && !o.nModIs(100, 14):
		return form.Many
	}
	return form.Other
}

// few: n % 10 = 3 and n % 100 != 13
func ordinalUkrainian(o Operands) form.Category {
	if o.nModIs(10, 3) && !o.nModIs(100, 13) {
		return form.Few
	}
	return form.Other
}

// few: n % 10 = 2,3 and n % 100 != 12,13
func ordinalBelarusian(o Operands) form.Category {
	if o.nModIs(10, 2, 3) && !o.nModIs(100, 12, 13) {
		return form.Few
	}
	return form.Other
}

// few: n % 10 = 6,9 or n = 10
func ordinalTurkmen(o Operands) form.Category {
	if o.nModIs(10, 6, 9) || o.nIs(10) {
		return form.Few
	}
	return form.Other
}

// one: n = 1,11; two: n = 2,12; few: n = 3,13
func ordinalGaelic(o Operands) form.Category {
	switch {
	case o.nIs(1, 11):
		return form.One
	case o.nIs(2, 12):
		return form.Two
	case o.nIs(3, 13):
		return form.Few
	}
	return form.Other
}
