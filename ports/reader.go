package ports

import (
	"stratasample/domain/population"
)

// RecordReaderPort supplies raw population entries from an external source
// (spreadsheet, CSV, database, in-memory list). The core does not prescribe
// the source; it only requires the Record shape.
type RecordReaderPort interface {
	ReadEntries() ([]population.RawEntry, error)
}
