package trips

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Column name candidates across the published archive vintages.
var (
	startColumns  = []string{"start station name", "start_station_name", "start station", "from station name"}
	endColumns    = []string{"end station name", "end_station_name", "end station", "to station name"}
	memberColumns = []string{"member type", "member_type", "member_casual", "usertype", "user type"}
)

var monthFilePattern = regexp.MustCompile(`(0[1-9]|1[0-2])[^0-9]*\.(csv|zip)$`)

// LoadSeasonFromDir reads every monthly archive in dir into a Season.
// File names must end in the two-digit month, e.g. trips-2019-07.zip or
// 201907-trips-04.csv. Files that fail to parse are logged and skipped so
// a single bad archive never loses the rest of the year.
func LoadSeasonFromDir(dir string) (*Season, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	season := &Season{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		m := monthFilePattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		month, _ := strconv.Atoi(m[1])
		path := filepath.Join(dir, e.Name())
		if strings.HasSuffix(name, ".zip") {
			err = loadMonthZip(path, month, season)
		} else {
			err = loadMonthCSV(path, month, season)
		}
		if err != nil {
			log.Printf("trips: skipping %s: %v", e.Name(), err)
		}
	}
	return season, nil
}

func loadMonthZip(path string, month int, season *Season) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zr.Close()
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".csv") {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return err
		}
		err = consumeCSV(r, month, season)
		r.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func loadMonthCSV(path string, month int, season *Season) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return consumeCSV(f, month, season)
}

// consumeCSV cleans one monthly CSV into the season. Rows with an empty
// start or end station name are dropped here; the aggregation core never
// sees an invalid record.
func consumeCSV(r io.Reader, month int, season *Season) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return err
	}
	startIdx := findColumn(header, startColumns)
	endIdx := findColumn(header, endColumns)
	memberIdx := findColumn(header, memberColumns)
	if startIdx < 0 || endIdx < 0 {
		return errors.New("no start/end station columns in header")
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if startIdx >= len(row) || endIdx >= len(row) {
			continue
		}
		start := strings.TrimSpace(row[startIdx])
		end := strings.TrimSpace(row[endIdx])
		if start == "" || end == "" {
			continue
		}
		member := MemberOther
		if memberIdx >= 0 && memberIdx < len(row) {
			member = ParseMemberType(row[memberIdx])
		}
		season.Add(month, TripRecord{StartStation: start, EndStation: end, Member: member})
	}
	return nil
}

func findColumn(header []string, candidates []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for _, c := range candidates {
			if h == c {
				return i
			}
		}
	}
	return -1
}
