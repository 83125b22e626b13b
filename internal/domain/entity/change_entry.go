package entity

import "time"

// ChangeEntry records one field-level change made to an asset by an edit.
// Entries are append-only and live and die with their asset.
type ChangeEntry struct {
	ID        string    `json:"id,omitempty"` // Assigned by the store on append.
	Field     string    `json:"field"`        // One of TrackedFields.
	Previous  string    `json:"previous"`     // Empty when the attribute was absent.
	New       string    `json:"new"`
	Actor     string    `json:"actor"`        // Email or account id of the editor.
	ChangedAt time.Time `json:"changed_at"`   // Store time of the write.
}
