// Package export renders the inventory as a spreadsheet.
package export

import (
	"locus/internal/domain/entity"
	"locus/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Columns of the exported sheet, in order.
//
//nolint:gochecknoglobals
var Columns = append([]string{entity.FieldCode}, entity.TrackedFields...)

type xlsxExporter struct{}

// NewSpreadsheetExporter returns an exporter producing .xlsx workbooks.
func NewSpreadsheetExporter() service.SpreadsheetExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ContentType() string {
	return xlsxContentType
}

func (e *xlsxExporter) Export(sheetName string, assets []*entity.Asset) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	// New workbooks start with "Sheet1".
	defaultSheet := file.GetSheetName(0)
	if err := file.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, errors.Wrapf(err, "rename sheet to %s", sheetName)
	}

	writer, err := file.NewStreamWriter(sheetName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	header := make([]any, len(Columns))
	for i, column := range Columns {
		header[i] = column
	}
	if err := writer.SetRow("A1", header); err != nil {
		return nil, errors.WithStack(err)
	}

	for i, asset := range assets {
		row := make([]any, len(Columns))
		for j, column := range Columns {
			row[j] = asset.FieldValue(column)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := writer.SetRow(cell, row); err != nil {
			return nil, errors.Wrapf(err, "write row for %s", asset.Code)
		}
	}

	if err := writer.Flush(); err != nil {
		return nil, errors.WithStack(err)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return buf.Bytes(), nil
}
