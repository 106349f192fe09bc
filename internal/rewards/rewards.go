// Package rewards converts recycled material into loyalty points.
package rewards

import (
	"math"
	"strconv"
	"strings"
)

// Unit is the unit a product or collection quantity is expressed in.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "g"
	UnitTon      Unit = "ton"
	UnitPiece    Unit = "pcs"
)

// DefaultPieceWeightKg is the assumed weight of a single piece when the
// configuration does not override it.
const DefaultPieceWeightKg = 0.1

const defaultRate = 5

var ratesPerKg = map[string]int{
	"PET":  8,
	"HDPE": 7,
	"PVC":  4,
	"LDPE": 6,
	"PP":   7,
	"PS":   5,
}

// ParseUnit maps a form value to a Unit. Empty and unrecognized values are
// treated as kilograms.
func ParseUnit(s string) Unit {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case UnitGram, UnitTon, UnitPiece, UnitKilogram:
		return u
	}

	return UnitKilogram
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitTon, UnitPiece:
		return true
	}

	return false
}

// Rate returns the points awarded per kilogram of the given material.
func Rate(material string) int {
	if r, ok := ratesPerKg[strings.ToUpper(strings.TrimSpace(material))]; ok {
		return r
	}

	return defaultRate
}

// ParseQuantity reads a numeric quantity from free text. Anything that does not
// parse to a finite number yields 0.
func ParseQuantity(s string) float64 {
	q, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}

	return q
}

type Calculator struct {
	PieceWeightKg float64
}

func NewCalculator(pieceWeightKg float64) *Calculator {
	return &Calculator{PieceWeightKg: pieceWeightKg}
}

// Kilograms normalizes quantity to kilograms. Negative or non-finite input is
// treated as zero.
func (c *Calculator) Kilograms(quantity float64, unit Unit) float64 {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
		return 0
	}

	switch unit {
	case UnitGram:
		return quantity / 1000
	case UnitTon:
		return quantity * 1000
	case UnitPiece:
		return quantity * c.PieceWeightKg
	default:
		return quantity
	}
}

// Points returns round(kg * rate), never negative.
func (c *Calculator) Points(material string, quantity float64, unit Unit) int {
	points := math.Round(c.Kilograms(quantity, unit) * float64(Rate(material)))
	if points <= 0 || math.IsNaN(points) {
		return 0
	}

	if points > math.MaxInt32 {
		return math.MaxInt32
	}

	return int(points)
}
