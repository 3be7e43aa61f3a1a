package country

import (
	"math"
	"strings"
	"testing"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := ParseTable(strings.NewReader(refCSV))
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	return table
}

func TestHaversine_QuarterCircumference(t *testing.T) {
	// A quarter of the Earth's circumference along the equator.
	got := Haversine(0, 0, 0, 90)
	want := math.Pi / 2 * EarthRadiusKm

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Haversine(0,0,0,90) = %v, want %v", got, want)
	}
}

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	if got := Haversine(38, -97, 38, -97); got != 0 {
		t.Errorf("Haversine(same point) = %v, want 0", got)
	}
}

func TestDistance_Computed(t *testing.T) {
	table := testTable(t)

	res := table.Distance("USA", "CAN")
	if res.Outcome != OutcomeComputed {
		t.Fatalf("Outcome = %v, want OutcomeComputed", res.Outcome)
	}
	if res.Kilometers <= 0 {
		t.Errorf("Kilometers = %v, want > 0", res.Kilometers)
	}
	// USA (38,-97) to CAN (60,-95) is roughly 2450 km.
	if res.Kilometers < 2000 || res.Kilometers > 3000 {
		t.Errorf("Kilometers = %v, want within [2000, 3000]", res.Kilometers)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	table := testTable(t)
	codes := table.Codes()

	for _, a := range codes {
		for _, b := range codes {
			if a == b {
				continue
			}
			ab := table.Distance(a, b)
			ba := table.Distance(b, a)
			if ab.Kilometers != ba.Kilometers {
				t.Errorf("Distance(%s,%s) = %v, Distance(%s,%s) = %v; want exact symmetry",
					a, b, ab.Kilometers, b, a, ba.Kilometers)
			}
		}
	}
}

func TestDistance_Equal(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		name string
		a, b string
	}{
		{name: "same case", a: "USA", b: "USA"},
		{name: "mixed case", a: "usa", b: "USA"},
		{name: "equal unknown codes", a: "ZZZ", b: "zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := table.Distance(tt.a, tt.b)
			if res.Outcome != OutcomeEqual {
				t.Errorf("Outcome = %v, want OutcomeEqual", res.Outcome)
			}
			if res.Kilometers != 0 {
				t.Errorf("Kilometers = %v, want unset for equal codes", res.Kilometers)
			}
		})
	}
}

func TestDistance_Unknown(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		name    string
		a, b    string
		missing []string
	}{
		{name: "second unknown", a: "USA", b: "ZZZ", missing: []string{"ZZZ"}},
		{name: "first unknown", a: "QQQ", b: "CAN", missing: []string{"QQQ"}},
		{name: "both unknown", a: "QQQ", b: "ZZZ", missing: []string{"QQQ", "ZZZ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := table.Distance(tt.a, tt.b)
			if res.Outcome != OutcomeUnknown {
				t.Fatalf("Outcome = %v, want OutcomeUnknown", res.Outcome)
			}
			if len(res.Missing) != len(tt.missing) {
				t.Fatalf("Missing = %v, want %v", res.Missing, tt.missing)
			}
			for i := range tt.missing {
				if res.Missing[i] != tt.missing[i] {
					t.Errorf("Missing[%d] = %q, want %q", i, res.Missing[i], tt.missing[i])
				}
			}
		})
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeComputed, "computed"},
		{OutcomeEqual, "equal"},
		{OutcomeUnknown, "unknown"},
		{Outcome(99), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}
