package salat

import "time"

// Times is an immutable snapshot of the five prayer instants for one
// calendar date. Every query method takes an explicit reference instant;
// callers that want "now" pass time.Now() at their own boundary, which
// keeps this type fully deterministic under test.
type Times struct {
	date    time.Time // midnight of the request date
	fajr    time.Time
	dhuhr   time.Time
	asr     time.Time
	maghrib time.Time
	isha    time.Time
}

// Date returns midnight of the calendar date the times were computed for.
func (t Times) Date() time.Time {
	return t.date
}

// Get returns the instant of the named prayer. The second return is false
// for NameNone or an unknown name.
func (t Times) Get(n Name) (time.Time, bool) {
	switch n {
	case NameFajr:
		return t.fajr, true
	case NameDhuhr:
		return t.dhuhr, true
	case NameAsr:
		return t.asr, true
	case NameMaghrib:
		return t.maghrib, true
	case NameIsha:
		return t.isha, true
	}
	return time.Time{}, false
}

// Ordered returns the five prayers in chronological scan order, Fajr first.
// This is the fixed iteration order every query in the package uses.
func (t Times) Ordered() []Prayer {
	return []Prayer{
		{NameFajr, t.fajr},
		{NameDhuhr, t.dhuhr},
		{NameAsr, t.asr},
		{NameMaghrib, t.maghrib},
		{NameIsha, t.isha},
	}
}

// NextName returns the first prayer whose instant is strictly after at.
// Once every prayer of the day has passed it still reports Fajr as long as
// tomorrow's Fajr, approximated as today's plus 24 hours, lies ahead;
// otherwise NameNone. The +24h approximation stands in for recomputing
// tomorrow's ephemeris and is part of the public contract at day
// boundaries.
func (t Times) NextName(at time.Time) Name {
	for _, p := range t.Ordered() {
		if p.Time.After(at) {
			return p.Name
		}
	}
	if t.fajr.Add(24 * time.Hour).After(at) {
		return NameFajr
	}
	return NameNone
}

// NextInstant resolves NextName to a concrete instant. Fajr resolved after
// today's Isha means tomorrow's Fajr, again as today's plus 24 hours.
func (t Times) NextInstant(at time.Time) (time.Time, bool) {
	n := t.NextName(at)
	if n == NameNone {
		return time.Time{}, false
	}
	inst, _ := t.Get(n)
	if n == NameFajr && at.After(t.isha) {
		inst = t.fajr.Add(24 * time.Hour)
	}
	return inst, true
}

// Remaining returns the duration from at until the next prayer instant.
func (t Times) Remaining(at time.Time) (time.Duration, bool) {
	inst, ok := t.NextInstant(at)
	if !ok {
		return 0, false
	}
	return inst.Sub(at), true
}

// CurrentName returns the prayer whose window at falls in: strictly between
// consecutive instants in scan order. The night window between Isha and the
// next day's Fajr still counts as Isha. Instants at or before today's Fajr
// yield NameNone.
func (t Times) CurrentName(at time.Time) Name {
	ordered := t.Ordered()
	for i := 0; i < len(ordered)-1; i++ {
		if at.After(ordered[i].Time) && at.Before(ordered[i+1].Time) {
			return ordered[i].Name
		}
	}
	if at.After(t.isha) && at.Before(t.fajr.Add(24*time.Hour)) {
		return NameIsha
	}
	return NameNone
}
