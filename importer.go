package smt

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

type CsvImporter struct {
}

func NewCsvImporter() *CsvImporter {
	return &CsvImporter{}
}

// Import reads a single column of head counts from a CSV file. Rows whose
// column is missing or does not parse as an integer are skipped, which also
// drops a header row. Size is a capacity hint.
func (i *CsvImporter) Import(file string, column, size int) ([]int, error) {
	if column < 0 {
		return []int{}, ErrInvalidRange
	}

	f, err := os.Open(file)
	if err != nil {
		return []int{}, err
	}

	defer f.Close()

	var (
		d = make([]int, 0, size)
		r = csv.NewReader(bufio.NewReader(f))
	)

	r.FieldsPerRecord = -1

	for {
		record, err := r.Read()

		if err == io.EOF {
			break
		} else if err != nil {
			return []int{}, err
		}

		if column >= len(record) {
			continue
		}

		h, err := strconv.Atoi(record[column])
		if err != nil {
			continue
		}

		d = append(d, h)
	}

	return d, nil
}
