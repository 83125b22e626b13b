// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// Attribute names of an asset record as stored remotely. History entries name
// the changed attribute with the same identifiers.
const (
	FieldCode         = "COD"
	FieldDescription  = "DESCRICAO"
	FieldBrand        = "MARCA"
	FieldModel        = "MODELO"
	FieldSerialNumber = "NUMERO_SERIE"
	FieldState        = "ESTADO"
	FieldLocation     = "LOCALIZACAO"
	FieldSector       = "SETOR_RESPONSAVEL"
	FieldImageURL     = "imageUrl"
)

// TrackedFields are the attributes whose changes are written to the change history.
var TrackedFields = []string{
	FieldDescription,
	FieldBrand,
	FieldModel,
	FieldSerialNumber,
	FieldState,
	FieldLocation,
	FieldSector,
	FieldImageURL,
}

// SearchableFields are the attributes matched by the free-text filter.
var SearchableFields = []string{
	FieldCode,
	FieldDescription,
	FieldLocation,
	FieldBrand,
	FieldModel,
	FieldSector,
	FieldState,
	FieldSerialNumber,
}

// AssetState is the condition of a physical asset.
type AssetState string

const (
	AssetStateNew           AssetState = "Novo"
	AssetStateInUse         AssetState = "Em uso"
	AssetStateInMaintenance AssetState = "Em manutenção"
	AssetStateDamaged       AssetState = "Danificado"
)

// AssetStates lists every valid state in display order.
var AssetStates = []AssetState{
	AssetStateNew,
	AssetStateInUse,
	AssetStateInMaintenance,
	AssetStateDamaged,
}

// String returns the string representation of the AssetState.
func (s AssetState) String() string {
	return string(s)
}

// IsValid checks if the AssetState is one of the enumerated values.
func (s AssetState) IsValid() bool {
	switch s {
	case AssetStateNew, AssetStateInUse, AssetStateInMaintenance, AssetStateDamaged:
		return true
	default:
		return false
	}
}

// Asset is a physical item identified by the code printed on its label.
type Asset struct {
	Code         string     `json:"code"`                // Primary key, immutable once created.
	Description  string     `json:"description"`         // Required.
	Brand        string     `json:"brand"`               // Optional.
	Model        string     `json:"model"`               // Optional.
	SerialNumber string     `json:"serial_number"`       // Optional.
	State        AssetState `json:"state"`               // One of AssetStates.
	Location     string     `json:"location"`            // Required.
	Sector       string     `json:"sector"`              // Optional responsible sector.
	ImageURL     string     `json:"image_url,omitempty"` // Download URL of the asset photo.
}

// FieldValue returns the value of a named attribute. Unknown names and absent
// values are reported as the empty string.
func (a *Asset) FieldValue(field string) string {
	if a == nil {
		return ""
	}

	switch field {
	case FieldCode:
		return a.Code
	case FieldDescription:
		return a.Description
	case FieldBrand:
		return a.Brand
	case FieldModel:
		return a.Model
	case FieldSerialNumber:
		return a.SerialNumber
	case FieldState:
		return string(a.State)
	case FieldLocation:
		return a.Location
	case FieldSector:
		return a.Sector
	case FieldImageURL:
		return a.ImageURL
	default:
		return ""
	}
}

// SetFieldValue assigns a named attribute. Unknown names are ignored.
func (a *Asset) SetFieldValue(field, value string) {
	switch field {
	case FieldCode:
		a.Code = value
	case FieldDescription:
		a.Description = value
	case FieldBrand:
		a.Brand = value
	case FieldModel:
		a.Model = value
	case FieldSerialNumber:
		a.SerialNumber = value
	case FieldState:
		a.State = AssetState(value)
	case FieldLocation:
		a.Location = value
	case FieldSector:
		a.Sector = value
	case FieldImageURL:
		a.ImageURL = value
	}
}

// Normalize trims surrounding whitespace from every attribute.
func (a *Asset) Normalize() {
	a.Code = strings.TrimSpace(a.Code)
	a.Description = strings.TrimSpace(a.Description)
	a.Brand = strings.TrimSpace(a.Brand)
	a.Model = strings.TrimSpace(a.Model)
	a.SerialNumber = strings.TrimSpace(a.SerialNumber)
	a.State = AssetState(strings.TrimSpace(string(a.State)))
	a.Location = strings.TrimSpace(a.Location)
	a.Sector = strings.TrimSpace(a.Sector)
	a.ImageURL = strings.TrimSpace(a.ImageURL)
}

// Clone returns a copy that can be mutated without affecting the receiver.
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}
	cloned := *a

	return &cloned
}
