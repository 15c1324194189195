package form

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is raised when two forms share a name across families.
var ErrDuplicateName = errors.New("language form name already registered")

// ErrUnknownForm is returned when a name does not identify any registered form.
var ErrUnknownForm = errors.New("unknown language form")

// Kind identifies the family a Form belongs to.
type Kind uint8

const (
	KindCardinal Kind = iota + 1
	KindOrdinal
	KindGender
)

func (k Kind) String() string {
	switch k {
	case KindCardinal:
		return "cardinal"
	case KindOrdinal:
		return "ordinal"
	case KindGender:
		return "gender"
	default:
		return "unknown"
	}
}

// Form is a grammatical category value: a cardinal or ordinal plural category,
// or a grammatical gender. Every form has a name that is unique across all families.
type Form interface {
	// Name returns the globally unique name used in catalog files and expressions.
	Name() string
	// Kind returns the family of the form.
	Kind() Kind
}

// Category is a CLDR plural category shared by the cardinal and ordinal families.
type Category uint8

// CLDR plural categories in canonical order.
const (
	Zero Category = iota
	One
	Two
	Few
	Many
	Other
)

var categoryNames = [...]string{"ZERO", "ONE", "TWO", "FEW", "MANY", "OTHER"}

// Categories lists every plural category in canonical order.
var Categories = []Category{Zero, One, Two, Few, Many, Other}

func (c Category) String() string {
	if int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Cardinal returns the cardinality form for the category.
func (c Category) Cardinal() Cardinal { return Cardinal(c) }

// Ordinal returns the ordinality form for the category.
func (c Category) Ordinal() Ordinal { return Ordinal(c) }

// Cardinal is a cardinality (plural) category such as CARDINALITY_ONE.
type Cardinal Category

const (
	CardinalZero  = Cardinal(Zero)
	CardinalOne   = Cardinal(One)
	CardinalTwo   = Cardinal(Two)
	CardinalFew   = Cardinal(Few)
	CardinalMany  = Cardinal(Many)
	CardinalOther = Cardinal(Other)
)

// Name implements Form.
func (c Cardinal) Name() string { return "CARDINALITY_" + Category(c).String() }

// Kind implements Form.
func (c Cardinal) Kind() Kind { return KindCardinal }

// Category returns the underlying plural category.
func (c Cardinal) Category() Category { return Category(c) }

func (c Cardinal) String() string { return c.Name() }

// Ordinal is an ordinality category such as ORDINALITY_TWO.
type Ordinal Category

const (
	OrdinalZero  = Ordinal(Zero)
	OrdinalOne   = Ordinal(One)
	OrdinalTwo   = Ordinal(Two)
	OrdinalFew   = Ordinal(Few)
	OrdinalMany  = Ordinal(Many)
	OrdinalOther = Ordinal(Other)
)

// Name implements Form.
func (o Ordinal) Name() string { return "ORDINALITY_" + Category(o).String() }

// Kind implements Form.
func (o Ordinal) Kind() Kind { return KindOrdinal }

// Category returns the underlying plural category.
func (o Ordinal) Category() Category { return Category(o) }

func (o Ordinal) String() string { return o.Name() }

// Gender is a grammatical gender.
type Gender uint8

const (
	Masculine Gender = iota
	Feminine
	Neuter
)

var genderNames = [...]string{"MASCULINE", "FEMININE", "NEUTER"}

// Genders lists every gender value.
var Genders = []Gender{Masculine, Feminine, Neuter}

// Name implements Form.
func (g Gender) Name() string {
	if int(g) >= len(genderNames) {
		return fmt.Sprintf("Gender(%d)", uint8(g))
	}
	return genderNames[g]
}

// Kind implements Form.
func (g Gender) Kind() Kind { return KindGender }

func (g Gender) String() string { return g.Name() }

// Compile-time checks that every family implements Form.
var (
	_ Form = Cardinal(0)
	_ Form = Ordinal(0)
	_ Form = Gender(0)
)
