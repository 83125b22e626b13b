package service

import "locus/internal/domain/entity"

// SpreadsheetExporter renders assets into a spreadsheet file
type SpreadsheetExporter interface {
	// ContentType is the MIME type of the produced file
	ContentType() string

	// Export renders one sheet with a header row and one row per asset
	Export(sheetName string, assets []*entity.Asset) ([]byte, error)
}
