package relclock

import (
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

type Unit int

const (
	Minute Unit = iota
	Hour
	Day
)

// Locale carries the words and rules for one target language. Word forms are
// keyed by CLDR plural category; a missing category falls back to plural.Other.
type Locale struct {
	Tag     language.Tag
	JustNow string
	// Ago receives the count and the chosen word form.
	Ago    string
	Forms  map[Unit]map[plural.Form]string
	Months [12]string
	// Date receives day, month name and year.
	Date string
}

// Russian is the locale the page is written in. Month names are genitive,
// as they read after a day number.
var Russian = Locale{
	Tag:     language.Russian,
	JustNow: "только что",
	Ago:     "%d %s назад",
	Forms: map[Unit]map[plural.Form]string{
		Minute: {plural.One: "минуту", plural.Few: "минуты", plural.Many: "минут", plural.Other: "минуты"},
		Hour:   {plural.One: "час", plural.Few: "часа", plural.Many: "часов", plural.Other: "часа"},
		Day:    {plural.One: "день", plural.Few: "дня", plural.Many: "дней", plural.Other: "дня"},
	},
	Months: [12]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	},
	Date: "%d %s %d г.",
}

var English = Locale{
	Tag:     language.English,
	JustNow: "just now",
	Ago:     "%d %s ago",
	Forms: map[Unit]map[plural.Form]string{
		Minute: {plural.One: "minute", plural.Other: "minutes"},
		Hour:   {plural.One: "hour", plural.Other: "hours"},
		Day:    {plural.One: "day", plural.Other: "days"},
	},
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Date: "%[2]s %[1]d, %[3]d",
}

// LocaleByName resolves a BCP 47 name ("ru", "ru-RU", "en-US") to a Locale.
func LocaleByName(name string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(name))
	if err != nil {
		return Locale{}, fmt.Errorf("parse locale %q: %w", name, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ru":
		return Russian, nil
	case "en":
		return English, nil
	}
	return Locale{}, fmt.Errorf("unsupported locale %q", name)
}

// form returns the word for n units.
func (l Locale) form(u Unit, n int) string {
	forms := l.Forms[u]
	if w, ok := forms[plural.Cardinal.MatchPlural(l.Tag, n, 0, 0, 0, 0)]; ok {
		return w
	}
	return forms[plural.Other]
}
