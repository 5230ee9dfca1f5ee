package telemetry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteReportFile creates filename and writes the table to it
func (t *Table) WriteReportFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Error while creating file: %w", err)
	}

	if err := t.WriteReport(file); err != nil {
		file.Close()
		return fmt.Errorf("Error while writing report %v: %w", filename, err)
	}

	return file.Close()
}

// WriteReport writes the header line followed by one line per row. The
// timestamp is printed with 3 decimals, all other columns with 2.
func (t *Table) WriteReport(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(t.Headers, " ") + "\n"); err != nil {
		return err
	}

	buf := make([]byte, 0, 256)
	for _, row := range t.Rows {
		buf = buf[:0]
		for i, v := range row {
			if i == 0 {
				buf = strconv.AppendFloat(buf, v, 'f', 3, 64)
				continue
			}
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, v, 'f', 2, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
