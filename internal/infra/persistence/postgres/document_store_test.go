package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"locus/internal/domain/repository"
	"locus/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `patrimonio/PAT\_01\%/`, escapeLike("patrimonio/PAT_01%/"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

func TestResolveSentinels_UsesFixedWidthTimestamps(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &documentStore{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return fixed },
	}

	out := s.resolveSentinels(map[string]any{
		"data":  repository.ServerTimestamp,
		"at":    fixed.Add(500 * time.Millisecond),
		"campo": "ESTADO",
	})

	assert.Equal(t, "2024-03-01T12:00:00.000000000Z", out["data"])
	assert.Equal(t, "2024-03-01T12:00:00.500000000Z", out["at"])
	assert.Equal(t, "ESTADO", out["campo"])

	// Fixed width keeps lexical and chronological order aligned.
	assert.Less(t, out["data"].(string), out["at"].(string))
}

func TestToDocument_CopiesFields(t *testing.T) {
	docM := &model.DocumentModel{
		Collection: "patrimonio",
		Key:        "PAT-001",
		Fields:     datatypes.JSONMap{"DESCRICAO": "Notebook"},
	}

	doc := toDocument(docM)
	doc.Fields["DESCRICAO"] = "changed"

	assert.Equal(t, "PAT-001", doc.Key)
	assert.Equal(t, "Notebook", docM.Fields["DESCRICAO"])

	empty := toDocument(&model.DocumentModel{Key: "x"})
	assert.NotNil(t, empty.Fields)
}
