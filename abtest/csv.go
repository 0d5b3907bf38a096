package abtest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV dumps the dataset as one row per unit with columns
// unit, group, pre_kpi, post_kpi. Group is "control" or "test".
func (ds Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"unit", "group", "pre_kpi", "post_kpi"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	unit := 0
	for _, arm := range []struct {
		name string
		data GroupData
	}{{"control", ds.Control}, {"test", ds.Test}} {
		for i := 0; i < arm.data.Len(); i++ {
			record := []string{
				strconv.Itoa(unit),
				arm.name,
				strconv.FormatFloat(arm.data.Pre[i], 'g', -1, 64),
				strconv.FormatFloat(arm.data.Post[i], 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write csv row %d: %w", unit, err)
			}
			unit++
		}
	}

	cw.Flush()
	return cw.Error()
}
