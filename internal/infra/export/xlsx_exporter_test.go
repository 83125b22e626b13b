package export

import (
	"bytes"
	"testing"

	"locus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	exporter := NewSpreadsheetExporter()
	assets := []*entity.Asset{
		{Code: "PAT-001", Description: "Notebook", Brand: "Dell", State: entity.AssetStateInUse, Location: "Sala 3"},
		{Code: "PAT-002", Description: "Cadeira", State: entity.AssetStateNew, Location: "Recepção", Sector: "Adm"},
	}

	data, err := exporter.Export("Patrimonio", assets)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exporter.ContentType())

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Patrimonio"}, file.GetSheetList())

	rows, err := file.GetRows("Patrimonio")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"COD", "DESCRICAO", "MARCA", "MODELO", "NUMERO_SERIE", "ESTADO", "LOCALIZACAO", "SETOR_RESPONSAVEL", "imageUrl"}, rows[0])
	assert.Equal(t, "PAT-001", rows[1][0])
	assert.Equal(t, "Dell", rows[1][2])
	assert.Equal(t, "Em uso", rows[1][5])
	assert.Equal(t, "Recepção", rows[2][6])
	assert.Equal(t, "Adm", rows[2][7])
}
