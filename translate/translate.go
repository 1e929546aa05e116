// Package translate renders user-facing text in the selected language.
//
// Messages are keyed by their en-US format string. Korean is the default
// output language; English and the operating system locale can be selected
// with SetLanguage and Resolve.
package translate

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported output languages. The first entry is the fallback.
var supported = []language.Tag{
	language.Korean,
	language.English,
}

var matcher = language.NewMatcher(supported)

// closest returns the index in supported that best matches tags, or the
// fallback when none of them is supported.
func closest(tags ...language.Tag) int {
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return 0
	}
	return index
}

// korean maps en-US keys to their Korean text.
var korean = [][2]string{
	{"Hex input : ", "Hex 입 력 : "},
	{"error: %v", "에러: %v"},
	{"hex length must be 6 or 8 digits", "hex 길이는 6 또는 8 자리여야 합니다"},
	{"hex text contains non-hexadecimal characters", "hex 값에 16진수가 아닌 문자가 있습니다"},
}

type output struct {
	tag     language.Tag
	printer *message.Printer
}

var current atomic.Pointer[output]

func init() {
	for _, m := range korean {
		if err := message.SetString(language.English, m[0], m[0]); err != nil {
			log.Printf("sicxe: catalog: %v", err)
		}
		if err := message.SetString(language.Korean, m[0], m[1]); err != nil {
			log.Printf("sicxe: catalog: %v", err)
		}
	}

	SetLanguage(language.Korean)
}

// SetLanguage switches output to the supported language closest to tag and
// returns the language chosen.
func SetLanguage(tag language.Tag) language.Tag {
	chosen := supported[closest(tag)]
	current.Store(&output{tag: chosen, printer: message.NewPrinter(chosen)})
	return chosen
}

// Language returns the language currently used by From.
func Language() language.Tag {
	return current.Load().tag
}

// SystemLanguage returns the supported language closest to the user's
// operating system locales.
func SystemLanguage() language.Tag {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("sicxe: locale: %v", err)
	}

	var tags []language.Tag
	for _, l := range locales {
		tag, err := language.Parse(strings.ReplaceAll(l, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return supported[0]
	}

	return supported[closest(tags...)]
}

// Resolve maps a language name to a supported tag. "auto" follows the
// operating system locale; an empty name selects the fallback.
func Resolve(name string) (language.Tag, error) {
	switch name {
	case "":
		return supported[0], nil
	case "auto":
		return SystemLanguage(), nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, err
	}

	return supported[closest(tag)], nil
}

// From formats an en-US Sprintf() key in the current language.
func From(key message.Reference, args ...any) string {
	return current.Load().printer.Sprintf(key, args...)
}
