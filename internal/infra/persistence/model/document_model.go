package model

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentModel is the GORM-specific struct for the 'documents' table.
// Nested collections are stored with their full path, e.g. "patrimonio/PAT-001/historico".
type DocumentModel struct {
	Collection string            `gorm:"type:varchar(512);primaryKey"`
	Key        string            `gorm:"type:varchar(255);primaryKey"`
	Fields     datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// CollectionRevisionModel is the GORM-specific struct for the 'collection_revisions' table.
// Every write bumps the revision of the written collection so pollers can detect changes.
type CollectionRevisionModel struct {
	Collection string `gorm:"type:varchar(512);primaryKey"`
	Revision   int64  `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollectionRevisionModel) TableName() string {
	return "collection_revisions"
}
