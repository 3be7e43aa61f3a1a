package country

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Outcome discriminates the three possible results of a distance query.
type Outcome int

const (
	// OutcomeComputed means both codes resolved and Kilometers holds the
	// great-circle distance between their centroids.
	OutcomeComputed Outcome = iota
	// OutcomeEqual means both codes are identical after normalization.
	// Deliberately not a zero distance: asking how far a country is from
	// itself is a semantic branch, not a computation.
	OutcomeEqual
	// OutcomeUnknown means one or both codes are absent from the table;
	// Missing names them.
	OutcomeUnknown
)

// String returns the outcome name as used in JSON output.
func (o Outcome) String() string {
	switch o {
	case OutcomeComputed:
		return "computed"
	case OutcomeEqual:
		return "equal"
	case OutcomeUnknown:
		return "unknown"
	}
	return "invalid"
}

// Result is the tagged result of a distance query. Exactly one case
// applies: Kilometers is meaningful only for OutcomeComputed, and
// Missing is populated only for OutcomeUnknown.
type Result struct {
	Outcome    Outcome
	Kilometers float64
	Missing    []string
}

// Distance resolves both codes against the table and computes the
// great-circle surface distance between their centroids.
//
// The equality check happens before any lookup, so two identical codes
// report OutcomeEqual even when neither exists in the table.
func (t *Table) Distance(codeA, codeB string) Result {
	a := normalizeCode(codeA)
	b := normalizeCode(codeB)

	if a == b {
		return Result{Outcome: OutcomeEqual}
	}

	ca, okA := t.centroids[a]
	cb, okB := t.centroids[b]
	if !okA || !okB {
		var missing []string
		if !okA {
			missing = append(missing, a)
		}
		if !okB {
			missing = append(missing, b)
		}
		return Result{Outcome: OutcomeUnknown, Missing: missing}
	}

	return Result{
		Outcome:    OutcomeComputed,
		Kilometers: Haversine(ca.Lat, ca.Lon, cb.Lat, cb.Lon),
	}
}

// Haversine returns the great-circle distance in kilometers between two
// points given as latitude/longitude in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
