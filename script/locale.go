package script

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Context represents information about the user's environment: the
// locale and the script the locale's language is customarily written in.
// The command line tool uses it to tell users whether their own locale
// is one of the scripts this pipeline treats.
type Context struct {
	Script language.Script // ISO 15924 script identifier
	Locale string          // ISO 639/3166 locale string
	Cat    Category        // category the locale's script maps to, or Neutral
}

// HebrewContext is a context for a Hebrew locale.
var HebrewContext = makeHebrewContext()

// LatinContext is a context for western locales.
var LatinContext = makeLatinContext()

func makeHebrewContext() *Context {
	ctx := &Context{
		Script: language.MustParseScript("Hebr"),
		Locale: "he-IL",
		Cat:    Hebrew,
	}
	return ctx
}

func makeLatinContext() *Context {
	ctx := &Context{
		Script: language.MustParseScript("Latn"),
		Locale: "en-US",
		Cat:    Neutral,
	}
	return ctx
}

// ContextFromEnvironment creates a Context from the operating system
// environment of the current user.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("setting default user locale %v", userLocale)
	} else {
		T().Infof("detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	scr, _ := lang.Script()
	ctx := &Context{
		Script: scr,
		Locale: userLocale,
		Cat:    categoryForScriptCode(scr.String()),
	}
	return ctx
}

// categoryForScriptCode maps an ISO 15924 script code onto a script
// category, including the variant codes of Arabic and Syriac.
func categoryForScriptCode(code string) Category {
	switch code {
	case "Hebr":
		return Hebrew
	case "Arab", "Aran":
		return Arabic
	case "Syrc", "Syre", "Syrj", "Syrn":
		return Syriac
	case "Thaa":
		return Thaana
	case "Nkoo":
		return NKo
	case "Mand":
		return Mandaic
	case "Samr":
		return Samaritan
	case "Armi":
		return ImperialAramaic
	case "Phnx":
		return Phoenician
	case "Nbat":
		return Nabataean
	case "Lydi":
		return Lydian
	case "Mero", "Merc":
		return Meroitic
	}
	return Neutral
}
