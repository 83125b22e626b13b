package mongo

import (
	"testing"
	"time"

	"locus/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToDocument_StripsInternalFields(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	doc := toDocument(bson.M{
		"_id":       "PAT-001",
		"_parent":   "ignored",
		"DESCRICAO": "Notebook",
		"data":      primitive.NewDateTimeFromTime(at),
		"count":     int32(3),
		"tags":      primitive.A{"a", int32(1)},
		"meta":      bson.D{{Key: "k", Value: "v"}},
	})

	assert.Equal(t, "PAT-001", doc.Key)
	assert.NotContains(t, doc.Fields, "_id")
	assert.NotContains(t, doc.Fields, "_parent")
	assert.Equal(t, "Notebook", doc.Fields["DESCRICAO"])
	assert.Equal(t, at, doc.Fields["data"])
	assert.Equal(t, int64(3), doc.Fields["count"])
	assert.Equal(t, []any{"a", int64(1)}, doc.Fields["tags"])
	assert.Equal(t, map[string]any{"k": "v"}, doc.Fields["meta"])
}

func TestResolveSentinels(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &store{now: func() time.Time { return at }}

	out := s.resolveSentinels(map[string]any{
		"data":  repository.ServerTimestamp,
		"campo": "ESTADO",
	})

	assert.Equal(t, at, out["data"])
	assert.Equal(t, "ESTADO", out["campo"])
}

func TestChildCollection(t *testing.T) {
	assert.Equal(t, "patrimonio.historico", childCollection("patrimonio", "historico"))
}
