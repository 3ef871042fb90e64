package trips

// SyntheticHub is the hub station of the demonstration dataset used when
// no validated records exist.
const SyntheticHub = "Columbus Circle / Union Station"

var syntheticDestinations = []string{
	"Lincoln Memorial",
	"Jefferson Dr & 14th St SW",
	"Massachusetts Ave & Dupont Circle NW",
	"15th & P St NW",
	"4th & M St SW",
}

var syntheticCounts = []int{40, 30, 20, 15, 10}

// SyntheticSeason builds the fixed demonstration dataset: one hub station
// with five destinations at descending trip counts. It activates only when
// the loaded record count is zero and never blends with real data.
func SyntheticSeason() *Season {
	season := &Season{}
	for i, dest := range syntheticDestinations {
		for n := 0; n < syntheticCounts[i]; n++ {
			season.Add(1, TripRecord{
				StartStation: SyntheticHub,
				EndStation:   dest,
				Member:       MemberAnnual,
			})
		}
	}
	return season
}
