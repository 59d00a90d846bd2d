package salat

import (
	"testing"
	"time"
)

// cairoTimes computes a fixed reference day used by the query tests.
func cairoTimes(t *testing.T) Times {
	t.Helper()
	p := mustParams(t, 30.0444, 31.2357, 2, AsrStandard)
	return Calculate(p, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC))
}

func get(t *testing.T, times Times, n Name) time.Time {
	t.Helper()
	inst, ok := times.Get(n)
	if !ok {
		t.Fatalf("Get(%v) reported missing prayer", n)
	}
	return inst
}

func TestGet_UnknownName(t *testing.T) {
	times := cairoTimes(t)
	if _, ok := times.Get(NameNone); ok {
		t.Error("Get(NameNone) should report missing")
	}
	if _, ok := times.Get(Name(99)); ok {
		t.Error("Get of out-of-range name should report missing")
	}
}

func TestOrdered_FixedOrder(t *testing.T) {
	times := cairoTimes(t)
	ordered := times.Ordered()
	if len(ordered) != 5 {
		t.Fatalf("Ordered() returned %d entries, want 5", len(ordered))
	}
	for i, n := range AllNames {
		if ordered[i].Name != n {
			t.Errorf("ordered[%d].Name = %v, want %v", i, ordered[i].Name, n)
		}
	}
}

func TestNextName_ThroughTheDay(t *testing.T) {
	times := cairoTimes(t)

	tests := []struct {
		name string
		at   time.Time
		want Name
	}{
		{"one minute before fajr", get(t, times, NameFajr).Add(-time.Minute), NameFajr},
		{"between fajr and dhuhr", get(t, times, NameFajr).Add(time.Minute), NameDhuhr},
		{"exactly at dhuhr", get(t, times, NameDhuhr), NameAsr},
		{"just before maghrib", get(t, times, NameMaghrib).Add(-time.Second), NameMaghrib},
		{"one minute after isha", get(t, times, NameIsha).Add(time.Minute), NameFajr},
		{"deep into the night", get(t, times, NameIsha).Add(4 * time.Hour), NameFajr},
		{"past tomorrow's approximate fajr", get(t, times, NameFajr).Add(25 * time.Hour), NameNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := times.NextName(tt.at); got != tt.want {
				t.Errorf("NextName(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestNextInstant_WrapsToTomorrowFajr(t *testing.T) {
	times := cairoTimes(t)
	fajr := get(t, times, NameFajr)
	isha := get(t, times, NameIsha)

	// Before Isha, Fajr still resolves to today's instant.
	at := fajr.Add(-time.Minute)
	inst, ok := times.NextInstant(at)
	if !ok || !inst.Equal(fajr) {
		t.Errorf("NextInstant before fajr = %v (ok=%v), want today's fajr %v", inst, ok, fajr)
	}

	// After Isha the resolved Fajr is tomorrow's, approximated as +24h.
	at = isha.Add(time.Minute)
	inst, ok = times.NextInstant(at)
	if !ok {
		t.Fatal("NextInstant after isha reported none")
	}
	if want := fajr.Add(24 * time.Hour); !inst.Equal(want) {
		t.Errorf("NextInstant after isha = %v, want %v", inst, want)
	}
	if !inst.After(at) {
		t.Errorf("resolved instant %v not after reference %v", inst, at)
	}
}

func TestRemaining(t *testing.T) {
	times := cairoTimes(t)
	dhuhr := get(t, times, NameDhuhr)

	at := dhuhr.Add(-90 * time.Minute)
	d, ok := times.Remaining(at)
	if !ok {
		t.Fatal("Remaining reported none in the middle of the day")
	}
	if d != 90*time.Minute {
		t.Errorf("Remaining = %v, want 90m", d)
	}

	// No next prayer resolvable once travel past the +24h approximation.
	if _, ok := times.Remaining(get(t, times, NameFajr).Add(25 * time.Hour)); ok {
		t.Error("Remaining should report none past tomorrow's approximate fajr")
	}
}

func TestCurrentName_Windows(t *testing.T) {
	times := cairoTimes(t)
	fajr := get(t, times, NameFajr)
	dhuhr := get(t, times, NameDhuhr)
	isha := get(t, times, NameIsha)

	midFajrDhuhr := fajr.Add(dhuhr.Sub(fajr) / 2)

	tests := []struct {
		name string
		at   time.Time
		want Name
	}{
		{"before fajr", fajr.Add(-time.Hour), NameNone},
		{"midpoint fajr-dhuhr", midFajrDhuhr, NameFajr},
		{"after dhuhr", dhuhr.Add(time.Minute), NameDhuhr},
		{"after maghrib", get(t, times, NameMaghrib).Add(time.Minute), NameMaghrib},
		{"night belongs to isha", isha.Add(3 * time.Hour), NameIsha},
		{"past tomorrow's approximate fajr", fajr.Add(25 * time.Hour), NameNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := times.CurrentName(tt.at); got != tt.want {
				t.Errorf("CurrentName(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestNextAfterIsha_NeverNoneSameNight(t *testing.T) {
	// One minute after Isha must always resolve to Fajr, for any date.
	p := mustParams(t, 30.0444, 31.2357, 2, AsrStandard)
	for _, date := range testDates {
		times := Calculate(p, date)
		isha := get(t, times, NameIsha)
		if got := times.NextName(isha.Add(time.Minute)); got != NameFajr {
			t.Errorf("%s: NextName a minute after isha = %v, want Fajr",
				date.Format("2006-01-02"), got)
		}
	}
}

func TestTimes_ValueSemantics(t *testing.T) {
	// A copied Times answers queries identically; there is no shared state.
	times := cairoTimes(t)
	copied := times
	at := get(t, times, NameAsr).Add(-time.Minute)
	if times.NextName(at) != copied.NextName(at) {
		t.Error("copied Times disagrees with original")
	}
}
