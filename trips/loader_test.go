package trips

import (
	"strings"
	"testing"
)

func TestConsumeCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"Duration,Start station name,End station name,Member type",
		"600,Union Station,Dupont Circle,Member",
		"300,Dupont Circle,Union Station,Casual",
		"120,,Dupont Circle,Member",
		"450,Union Station,,Casual",
		"200,Union Station,Dupont Circle,Unknown",
	}, "\n")

	season := &Season{}
	if err := consumeCSV(strings.NewReader(csvData), 7, season); err != nil {
		t.Fatalf("consumeCSV: %v", err)
	}
	recs := season.Months[6]
	if len(recs) != 3 {
		t.Fatalf("expected 3 cleaned records, got %d", len(recs))
	}
	if recs[0].Member != MemberAnnual {
		t.Errorf("record 0 member: got %s, want annual", recs[0].Member)
	}
	if recs[1].Member != MemberCasual {
		t.Errorf("record 1 member: got %s, want casual", recs[1].Member)
	}
	if recs[2].Member != MemberOther {
		t.Errorf("record 2 member: got %s, want other", recs[2].Member)
	}
}

func TestConsumeCSVHeaderVariants(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"classic", "start station name,end station name,member type"},
		{"snake", "start_station_name,end_station_name,member_casual"},
		{"divvy style", "from station name,to station name,usertype"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			season := &Season{}
			data := tt.header + "\nA,B,member\n"
			if err := consumeCSV(strings.NewReader(data), 1, season); err != nil {
				t.Fatalf("consumeCSV: %v", err)
			}
			if season.Total() != 1 {
				t.Errorf("expected 1 record, got %d", season.Total())
			}
		})
	}
}

func TestConsumeCSVMissingColumns(t *testing.T) {
	season := &Season{}
	err := consumeCSV(strings.NewReader("a,b,c\n1,2,3\n"), 1, season)
	if err == nil {
		t.Fatal("expected error for unrecognized header")
	}
}

func TestParseMemberType(t *testing.T) {
	tests := []struct {
		raw  string
		want MemberType
	}{
		{"Member", MemberAnnual},
		{"  Subscriber ", MemberAnnual},
		{"casual", MemberCasual},
		{"Customer", MemberCasual},
		{"Day Pass", MemberCasual},
		{"", MemberOther},
		{"mystery", MemberOther},
	}
	for _, tt := range tests {
		if got := ParseMemberType(tt.raw); got != tt.want {
			t.Errorf("ParseMemberType(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestSeasonAddIgnoresBadMonths(t *testing.T) {
	season := &Season{}
	season.Add(0, TripRecord{StartStation: "A", EndStation: "B"})
	season.Add(13, TripRecord{StartStation: "A", EndStation: "B"})
	if season.Total() != 0 {
		t.Errorf("out-of-range months were stored")
	}
}

func TestSyntheticSeason(t *testing.T) {
	season := SyntheticSeason()
	if season.Total() != 115 {
		t.Fatalf("synthetic total: got %d, want 115", season.Total())
	}
	counts := map[string]int{}
	for _, rec := range season.Months[0] {
		if rec.StartStation != SyntheticHub {
			t.Fatalf("unexpected start station %q", rec.StartStation)
		}
		counts[rec.EndStation]++
	}
	if len(counts) != 5 {
		t.Fatalf("expected 5 destinations, got %d", len(counts))
	}
	seen := map[int]bool{}
	for _, n := range counts {
		seen[n] = true
	}
	for _, want := range []int{40, 30, 20, 15, 10} {
		if !seen[want] {
			t.Errorf("missing destination with %d trips", want)
		}
	}
}
