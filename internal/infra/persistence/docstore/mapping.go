// Package docstore maps domain entities onto record store documents.
package docstore

import (
	"fmt"
	"time"

	"locus/internal/domain/entity"
	"locus/internal/domain/repository"
)

// Change history document fields.
const (
	historyField    = "campo"
	historyPrevious = "de"
	historyNew      = "para"
	historyActor    = "alteradoPor"
	historyAt       = "data"
)

// User profile document fields.
const (
	userEmail       = "email"
	userDisplayName = "displayName"
	userRole        = "role"
)

func fromAssetDomain(asset *entity.Asset) map[string]any {
	fields := make(map[string]any, len(entity.TrackedFields))
	for _, field := range entity.TrackedFields {
		value := asset.FieldValue(field)
		if field == entity.FieldImageURL && value == "" {
			continue
		}
		fields[field] = value
	}

	return fields
}

func toAssetDomain(doc *repository.Document) *entity.Asset {
	asset := &entity.Asset{Code: doc.Key}
	for _, field := range entity.TrackedFields {
		asset.SetFieldValue(field, stringField(doc.Fields, field))
	}

	return asset
}

func fromChangeEntryDomain(entry *entity.ChangeEntry) map[string]any {
	return map[string]any{
		historyField:    entry.Field,
		historyPrevious: entry.Previous,
		historyNew:      entry.New,
		historyActor:    entry.Actor,
		historyAt:       repository.ServerTimestamp,
	}
}

func toChangeEntryDomain(doc *repository.Document) *entity.ChangeEntry {
	return &entity.ChangeEntry{
		ID:        doc.Key,
		Field:     stringField(doc.Fields, historyField),
		Previous:  stringField(doc.Fields, historyPrevious),
		New:       stringField(doc.Fields, historyNew),
		Actor:     stringField(doc.Fields, historyActor),
		ChangedAt: timeField(doc.Fields, historyAt),
	}
}

func fromUserDomain(profile *entity.UserProfile) map[string]any {
	return map[string]any{
		userEmail:       profile.Email,
		userDisplayName: profile.DisplayName,
		userRole:        string(profile.Role),
	}
}

func toUserDomain(doc *repository.Document) *entity.UserProfile {
	return &entity.UserProfile{
		UID:         doc.Key,
		Email:       stringField(doc.Fields, userEmail),
		DisplayName: stringField(doc.Fields, userDisplayName),
		Role:        entity.Role(stringField(doc.Fields, userRole)),
	}
}

// stringField reads a field as a string. Absent and null fields are empty.
func stringField(fields map[string]any, name string) string {
	switch v := fields[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// timeField reads a timestamp stored natively or as an RFC 3339 string.
func timeField(fields map[string]any, name string) time.Time {
	switch v := fields[name].(type) {
	case time.Time:
		return v
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}
		}

		return parsed
	default:
		return time.Time{}
	}
}
