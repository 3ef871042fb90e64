package stats

import (
	"fmt"
	"strconv"
	"strings"
)

// MemberFilter restricts which trips contribute to a cache cell.
type MemberFilter int

const (
	MemberAll MemberFilter = iota
	MemberAnnual
	MemberCasual

	numMemberFilters = 3
)

func (f MemberFilter) String() string {
	switch f {
	case MemberAnnual:
		return "annual"
	case MemberCasual:
		return "casual"
	}
	return "all"
}

// ParseMemberFilter maps a control value to a MemberFilter.
func ParseMemberFilter(s string) (MemberFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return MemberAll, nil
	case "annual", "member":
		return MemberAnnual, nil
	case "casual":
		return MemberCasual, nil
	}
	return MemberAll, fmt.Errorf("unknown member filter %q", s)
}

// MonthFilter restricts which trips contribute to a cache cell.
// MonthAll is 0; calendar months are 1..12.
type MonthFilter int

const (
	MonthAll MonthFilter = 0

	numMonthFilters = 13
)

func (f MonthFilter) String() string {
	if f == MonthAll {
		return "all"
	}
	return fmt.Sprintf("%02d", int(f))
}

// ParseMonthFilter maps a control value ("off"/"all"/"01".."12") to a
// MonthFilter.
func ParseMonthFilter(s string) (MonthFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" || s == "off" {
		return MonthAll, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 12 {
		return MonthAll, fmt.Errorf("unknown month filter %q", s)
	}
	return MonthFilter(v), nil
}
