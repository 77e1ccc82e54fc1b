package chrono

/*
cal_era.go contains the era tables of the non-ISO calendars.
*/

/*
era maps era years onto calendar years. Forward eras count up from
anchor; inverse eras count backward from it, as with BCE.
*/
type era struct {
	name     string
	anchor   int // calendar year of era year 1
	inverse  bool
	start    ISODate
	hasStart bool // false for the catch-all era
}

func (r era) yearOf(eraYear int) int {
	if r.inverse {
		return r.anchor - eraYear + 1
	}
	return r.anchor + eraYear - 1
}

func (r era) eraYearOf(year int) int {
	if r.inverse {
		return r.anchor - year + 1
	}
	return year - r.anchor + 1
}

func startingAt(name string, anchor int, start ISODate) era {
	return era{name: name, anchor: anchor, start: start, hasStart: true}
}

/*
calendars is indexed by [CalendarKind]. Eras are listed newest first;
the last era of each calendar accepts every date not claimed by an
earlier entry.
*/
var calendars = [...]*calendar{
	ISO8601: {kind: ISO8601},
	Gregorian: {kind: Gregorian, eras: []era{
		startingAt(`ce`, 1, ISODate{Year: 1, Month: 1, Day: 1}),
		{name: `bce`, anchor: 0, inverse: true},
	}},
	Buddhist: {kind: Buddhist, offset: 543, eras: []era{
		{name: `be`, anchor: 1},
	}},
	ROC: {kind: ROC, offset: -1911, eras: []era{
		startingAt(`minguo`, 1, ISODate{Year: 1912, Month: 1, Day: 1}),
		{name: `before-roc`, anchor: 0, inverse: true},
	}},
	Japanese: {kind: Japanese, eras: []era{
		startingAt(`reiwa`, 2019, ISODate{Year: 2019, Month: 5, Day: 1}),
		startingAt(`heisei`, 1989, ISODate{Year: 1989, Month: 1, Day: 8}),
		startingAt(`showa`, 1926, ISODate{Year: 1926, Month: 12, Day: 25}),
		startingAt(`taisho`, 1912, ISODate{Year: 1912, Month: 7, Day: 30}),
		startingAt(`meiji`, 1868, ISODate{Year: 1868, Month: 9, Day: 8}),
		startingAt(`ce`, 1, ISODate{Year: 1, Month: 1, Day: 1}),
		{name: `bce`, anchor: 0, inverse: true},
	}},
}

/*
eraNamed returns the era called name, ignoring case. Japanese eras
also accept their customary aliases.
*/
func (r *calendar) eraNamed(name string) (era, bool) {
	key := fold(name)
	if alias, ok := eraAliases[key]; ok {
		key = alias
	}
	for _, e := range r.eras {
		if e.name == key {
			return e, true
		}
	}
	return era{}, false
}

var eraAliases = map[string]string{
	`ad`:  `ce`,
	`bc`:  `bce`,
	`roc`: `minguo`,
}

/*
eraOf returns the era containing d. Era boundaries are not validated
against the era year; a year past the end of its era is accepted as
written.
*/
func (r *calendar) eraOf(d ISODate) (era, bool) {
	for _, e := range r.eras {
		if !e.hasStart || d.Compare(e.start) >= 0 {
			return e, true
		}
	}
	return era{}, false
}
