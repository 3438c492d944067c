package model

import "time"

// Header names of the input columns
const (
	ColumnDate       = "Date"
	ColumnCumAdded   = "CumAdded"
	ColumnCumDeleted = "CumDeleted"
	ColumnCumNet     = "CumNet"
)

// RequiredColumns lists every column a time series file must carry
var RequiredColumns = []string{
	ColumnDate,
	ColumnCumAdded,
	ColumnCumDeleted,
	ColumnCumNet,
}

// TimeSeriesRow is one dated sample of cumulative line counts
type TimeSeriesRow struct {
	Date       time.Time
	CumAdded   float64
	CumDeleted float64
	CumNet     float64
}

// Dataset holds the rows of one input file in file order
type Dataset struct {
	Source string
	Rows   []TimeSeriesRow
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Dates returns the date column in row order
func (d *Dataset) Dates() []time.Time {
	dates := make([]time.Time, d.Len())
	for i := range dates {
		dates[i] = d.Rows[i].Date
	}
	return dates
}

// CumAdded returns the cumulative-added column in row order
func (d *Dataset) CumAdded() []float64 {
	return d.column(func(r TimeSeriesRow) float64 { return r.CumAdded })
}

// CumDeleted returns the cumulative-deleted column in row order
func (d *Dataset) CumDeleted() []float64 {
	return d.column(func(r TimeSeriesRow) float64 { return r.CumDeleted })
}

// CumNet returns the cumulative-net column in row order
func (d *Dataset) CumNet() []float64 {
	return d.column(func(r TimeSeriesRow) float64 { return r.CumNet })
}

func (d *Dataset) column(pick func(TimeSeriesRow) float64) []float64 {
	values := make([]float64, d.Len())
	for i := range values {
		values[i] = pick(d.Rows[i])
	}
	return values
}

// Span returns the first and last date. ok is false for an empty dataset.
func (d *Dataset) Span() (first, last time.Time, ok bool) {
	if d.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}
	return d.Rows[0].Date, d.Rows[len(d.Rows)-1].Date, true
}
