package engineio

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders integers with thousands separators, the way FrankyGo's
// attacks package formats large node counts for human-readable perft and
// search output (FrankyGo uses message.NewPrinter(language.German); this
// engine's CLI output is English-locale instead).
var printer = message.NewPrinter(language.English)

// FormatNodeCount renders n with locale-appropriate thousands separators,
// e.g. 193690690 -> "193,690,690".
func FormatNodeCount(n uint64) string {
	return printer.Sprintf("%d", n)
}
