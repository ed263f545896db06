package loads

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/freightdesk/backoffice/pkg/db/models"
)

// ExportHeader is the fixed column order of the CSV export.
var ExportHeader = []string{
	"Load Number",
	"Status",
	"Pickup City",
	"Pickup State",
	"Pickup Date",
	"Delivery City",
	"Delivery State",
	"Delivery Date",
	"Rate",
	"Miles",
	"Broker",
}

const exportDateLayout = "01/02/2006"

// WriteCSV writes the header followed by one record per load. Dates are
// rendered in loc as MM/DD/YYYY; absent numbers are written as 0.
func WriteCSV(w io.Writer, loads []models.Load, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, load := range loads {
		if err := writer.Write(exportRecord(load, loc)); err != nil {
			return fmt.Errorf("write csv row %s: %w", load.LoadNumber, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func exportRecord(load models.Load, loc *time.Location) []string {
	miles := 0
	if load.EstimatedMiles != nil {
		miles = *load.EstimatedMiles
	}
	return []string{
		load.LoadNumber,
		load.Status.String(),
		stringOrEmpty(load.PickupCity),
		stringOrEmpty(load.PickupState),
		exportDate(load.PickupAt, loc),
		stringOrEmpty(load.DeliveryCity),
		stringOrEmpty(load.DeliveryState),
		exportDate(load.DeliveryAt, loc),
		decimalOrZero(load.Rate).String(),
		strconv.Itoa(miles),
		stringOrEmpty(load.BrokerName),
	}
}

func exportDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format(exportDateLayout)
}

// ExportFilename names the attachment for a download started at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("loads-%s.csv", now.UTC().Format("20060102-150405"))
}
