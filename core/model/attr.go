package model

import "time"

// AttrKind enumerates the value kinds an extra task attribute can take.
type AttrKind int

const (
	AttrText AttrKind = iota
	AttrNumber
	AttrDate
)

// AttrValue is a free-form task attribute used for spreadsheet column
// mapping. The kind is fixed at build time.
type AttrValue struct {
	Kind   AttrKind
	Text   string
	Number float64
	Date   time.Time
}

// TextAttr wraps a string attribute.
func TextAttr(s string) AttrValue { return AttrValue{Kind: AttrText, Text: s} }

// NumberAttr wraps a numeric attribute.
func NumberAttr(f float64) AttrValue { return AttrValue{Kind: AttrNumber, Number: f} }

// DateAttr wraps a date attribute.
func DateAttr(d time.Time) AttrValue { return AttrValue{Kind: AttrDate, Date: d} }
