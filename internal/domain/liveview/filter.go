package liveview

import (
	"slices"
	"sort"
	"strings"

	"locus/internal/domain/entity"
)

// Filter is a conjunctive predicate over assets. Zero values match everything.
type Filter struct {
	// Text is matched case-insensitively as a substring of any searchable field.
	Text string `json:"text,omitempty"`
	// States, when non-empty, restricts assets to these states.
	States []entity.AssetState `json:"states,omitempty"`
	// Sector, when non-empty, restricts assets to this responsible sector.
	Sector string `json:"sector,omitempty"`
}

// IsZero reports whether the filter matches every asset.
func (f Filter) IsZero() bool {
	return f.Text == "" && len(f.States) == 0 && f.Sector == ""
}

// Match reports whether asset satisfies every part of the filter.
func (f Filter) Match(asset *entity.Asset) bool {
	if asset == nil {
		return false
	}

	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		found := false
		for _, field := range entity.SearchableFields {
			if strings.Contains(strings.ToLower(asset.FieldValue(field)), needle) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	if len(f.States) > 0 && !slices.Contains(f.States, asset.State) {
		return false
	}

	if f.Sector != "" && asset.Sector != f.Sector {
		return false
	}

	return true
}

// Apply returns the assets that match filter, preserving their order.
func Apply(assets []*entity.Asset, filter Filter) []*entity.Asset {
	out := make([]*entity.Asset, 0, len(assets))
	for _, asset := range assets {
		if filter.Match(asset) {
			out = append(out, asset)
		}
	}

	return out
}

// Sectors returns the distinct non-empty sectors of assets in ascending order.
func Sectors(assets []*entity.Asset) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, asset := range assets {
		if asset == nil || asset.Sector == "" {
			continue
		}
		if _, ok := seen[asset.Sector]; ok {
			continue
		}
		seen[asset.Sector] = struct{}{}
		out = append(out, asset.Sector)
	}
	sort.Strings(out)

	return out
}
