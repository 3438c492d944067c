package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codechurn/pkg/domain/interfaces"
	"github.com/secmon-lab/codechurn/pkg/domain/model"
)

// dateLayouts are tried in order for every date cell
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
}

// CSV loads time series from comma separated files
type CSV struct {
	comma rune
}

// NewCSV creates a CSV time series loader
func NewCSV() *CSV {
	return &CSV{comma: ','}
}

var _ interfaces.TimeSeriesLoader = (*CSV)(nil)

// Load reads the file at path
func (c *CSV) Load(ctx context.Context, path string) (*model.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "time series file not found",
				goerr.V("path", path),
				goerr.T(model.ErrTagFileNotFound))
		}
		return nil, goerr.Wrap(err, "failed to open time series file",
			goerr.V("path", path),
			goerr.T(model.ErrTagReadFailure))
	}
	defer file.Close()

	ds, err := c.Read(ctx, file, path)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("Time series loaded",
		"path", path,
		"rows", ds.Len(),
	)
	return ds, nil
}

// Read parses a time series from r. source names the input in errors.
func (c *CSV) Read(ctx context.Context, r io.Reader, source string) (*model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = c.comma
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, goerr.New("time series file has no header row",
			goerr.V("source", source),
			goerr.T(model.ErrTagMissingColumn))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read header row",
			goerr.V("source", source),
			goerr.T(model.ErrTagReadFailure))
	}

	idx, err := columnIndex(header, source)
	if err != nil {
		return nil, err
	}

	ds := &model.Dataset{Source: source, Rows: []model.TimeSeriesRow{}}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read row",
				goerr.V("source", source),
				goerr.V("line", line),
				goerr.T(model.ErrTagReadFailure))
		}

		row, err := parseRow(record, idx, source, line)
		if err != nil {
			return nil, err
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

type columns struct {
	date, added, deleted, net int
}

func columnIndex(header []string, source string) (columns, error) {
	found := make(map[string]int, len(header))
	for i, h := range header {
		h = cleanCell(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, dup := found[h]; !dup {
			found[h] = i
		}
	}

	for _, name := range model.RequiredColumns {
		if _, ok := found[name]; !ok {
			return columns{}, goerr.New("required column is missing",
				goerr.V("column", name),
				goerr.V("header", header),
				goerr.V("source", source),
				goerr.T(model.ErrTagMissingColumn))
		}
	}

	return columns{
		date:    found[model.ColumnDate],
		added:   found[model.ColumnCumAdded],
		deleted: found[model.ColumnCumDeleted],
		net:     found[model.ColumnCumNet],
	}, nil
}

func parseRow(record []string, idx columns, source string, line int) (model.TimeSeriesRow, error) {
	var row model.TimeSeriesRow

	rawDate := cleanCell(record[idx.date])
	date, ok := parseDate(rawDate)
	if !ok {
		return row, goerr.New("unrecognized date",
			goerr.V("source", source),
			goerr.V("line", line),
			goerr.V("column", model.ColumnDate),
			goerr.V("value", rawDate),
			goerr.T(model.ErrTagInvalidDate))
	}
	row.Date = date

	targets := []struct {
		column string
		index  int
		dst    *float64
	}{
		{model.ColumnCumAdded, idx.added, &row.CumAdded},
		{model.ColumnCumDeleted, idx.deleted, &row.CumDeleted},
		{model.ColumnCumNet, idx.net, &row.CumNet},
	}
	for _, t := range targets {
		raw := cleanCell(record[t.index])
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = strconv.ErrRange
		}
		if err != nil {
			return row, goerr.Wrap(err, "value is not a finite number",
				goerr.V("source", source),
				goerr.V("line", line),
				goerr.V("column", t.column),
				goerr.V("value", raw),
				goerr.T(model.ErrTagInvalidValue))
		}
		*t.dst = v
	}

	return row, nil
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}
