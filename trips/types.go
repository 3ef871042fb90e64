package trips

import "strings"

// MemberType is the collapsed membership classification of a trip.
type MemberType int

const (
	MemberAnnual MemberType = iota
	MemberCasual
	MemberOther
)

func (m MemberType) String() string {
	switch m {
	case MemberAnnual:
		return "annual"
	case MemberCasual:
		return "casual"
	}
	return "other"
}

// ParseMemberType collapses the raw member field of a trip record.
// Unknown values map to MemberOther, never to an error.
func ParseMemberType(raw string) MemberType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "member", "annual", "annual member", "subscriber", "registered":
		return MemberAnnual
	case "casual", "customer", "day pass", "day key", "single trip":
		return MemberCasual
	}
	return MemberOther
}

// TripRecord is one cleaned rental. Immutable once built.
type TripRecord struct {
	StartStation string
	EndStation   string
	Member       MemberType
}

// Season holds one calendar year of trips as 12 ordered monthly buckets,
// index 0 = January.
type Season struct {
	Months [12][]TripRecord
}

// Add appends a record to the bucket for month (1..12). Out-of-range
// months are ignored; callers validate month numbers during loading.
func (s *Season) Add(month int, rec TripRecord) {
	if month < 1 || month > 12 {
		return
	}
	s.Months[month-1] = append(s.Months[month-1], rec)
}

// Total returns the validated record count across all months.
func (s *Season) Total() int {
	n := 0
	for i := range s.Months {
		n += len(s.Months[i])
	}
	return n
}
