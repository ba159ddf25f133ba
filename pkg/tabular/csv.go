package tabular

import (
	"encoding/csv"
	"io"

	"github.com/agentstation/restomap/pkg/errors"
)

// ReadCSV parses CSV input into a Dataset. The first record is the
// header and becomes the column order. Records with a different field
// count than the header are a parse error.
func ReadCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Dataset{}, errors.NewParseError("csv", "", "empty input", err)
	}
	if err != nil {
		return Dataset{}, errors.WrapParse("csv", "", err)
	}

	d := New(header...)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, errors.WrapParse("csv", "", err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		d.Append(row)
	}

	return d, nil
}

// WriteCSV writes the dataset as CSV using the declared column order.
// Missing cells are written as empty strings.
func WriteCSV(w io.Writer, d Dataset) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(d.Columns); err != nil {
		return errors.WrapIO("write", "csv header", err)
	}

	record := make([]string, len(d.Columns))
	for _, row := range d.Rows {
		for i, col := range d.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return errors.WrapIO("write", "csv row", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
