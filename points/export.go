package points

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// Record is one CSV row of a point set.
type Record struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

// ExportCSV writes the point set to a CSV file with an x,y header.
func ExportCSV(s *Set, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	records := make([]Record, s.Len())
	for i := range records {
		records[i] = Record{X: s.X[i], Y: s.Y[i]}
	}
	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ImportCSV reads a point set previously written by ExportCSV.
func ImportCSV(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	s := &Set{X: make([]float64, len(records)), Y: make([]float64, len(records))}
	for i, r := range records {
		s.X[i] = r.X
		s.Y[i] = r.Y
	}
	return s, nil
}
