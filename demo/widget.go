// Package demo contains the example publisher and subscriber pair used by
// the command-line demonstration: a Widget that reverses strings and
// announces each result, and a Consumer listening to it.
package demo

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pd-org/go-event/event"
)

// ReversedData describes the payload of a StringReversed fire.
type ReversedData struct {
	Original string
	Reversed string
}

// Widget is a publisher that owns a StringReversed event and fires it
// whenever a string has been reversed.
type Widget struct {
	StringReversed event.Event1[ReversedData]

	titler *cases.Caser
}

// NewWidget returns a new widget.
// With titleCase set, every reversed result is title-cased before firing.
func NewWidget(titleCase bool) *Widget {
	w := &Widget{}

	if titleCase {
		titler := cases.Title(language.English)
		w.titler = &titler
	}

	return w
}

// ReverseString reverses s by rune and fires the StringReversed event
// with the result.
func (w *Widget) ReverseString(s string) {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	reversed := string(runes)
	if w.titler != nil {
		reversed = w.titler.String(reversed)
	}

	w.StringReversed.Fire(ReversedData{Original: s, Reversed: reversed})
}
