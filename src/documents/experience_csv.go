package documents

import (
	"encoding/csv"
	"io"

	"github.com/hardika-spec-610/linkedIn-BE/src/models"
)

var ExperienceCSVHeader = []string{"role", "company", "area", "startDate", "endDate"}

const csvDateLayout = "02.01.2006"

// ExperienceCSV writes one experience per row. Each row is flushed as soon as it
// is written, so a blocking writer (an io.Pipe) holds back the producer.
type ExperienceCSV struct {
	w      *csv.Writer
	header bool
}

func NewExperienceCSV(w io.Writer) *ExperienceCSV {
	return &ExperienceCSV{w: csv.NewWriter(w)}
}

func (e *ExperienceCSV) Write(exp models.Experience) error {
	if err := e.writeHeader(); err != nil {
		return err
	}
	return e.writeRow(ExperienceRecord(exp))
}

// Close writes the header when no rows were written and flushes
func (e *ExperienceCSV) Close() error {
	if err := e.writeHeader(); err != nil {
		return err
	}
	e.w.Flush()
	return e.w.Error()
}

func (e *ExperienceCSV) writeHeader() error {
	if e.header {
		return nil
	}
	e.header = true
	return e.writeRow(ExperienceCSVHeader)
}

func (e *ExperienceCSV) writeRow(record []string) error {
	if err := e.w.Write(record); err != nil {
		return err
	}
	e.w.Flush()
	return e.w.Error()
}

// ExperienceRecord leaves endDate blank for an ongoing experience
func ExperienceRecord(exp models.Experience) []string {
	endDate := ""
	if !exp.Ongoing() {
		endDate = exp.EndDate.Format(csvDateLayout)
	}
	return []string{
		exp.Role,
		exp.Company,
		exp.Area,
		exp.StartDate.Format(csvDateLayout),
		endDate,
	}
}
