package usecase

import (
	"context"

	"locus/internal/domain/entity"
)

// ExportFile is a generated spreadsheet of the inventory.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
	Rows        int
}

// ExportUsecase produces a spreadsheet of every asset.
type ExportUsecase interface {
	Export(ctx context.Context, session *entity.Session) (*ExportFile, error)
}
