package graphql

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// StoreConfig is the subset of a store view's configuration the storefront
// build needs.
type StoreConfig struct {
	Code               string `json:"code"`
	StoreCode          string `json:"store_code,omitempty"`
	StoreName          string `json:"store_name,omitempty"`
	Locale             string `json:"locale"`
	BaseCurrencyCode   string `json:"base_currency_code,omitempty"`
	SecureBaseMediaURL string `json:"secure_base_media_url"`
	IsDefaultStore     bool   `json:"is_default_store,omitempty"`
}

// Key identifies the store view, preferring store_code over the deprecated
// code field.
func (s StoreConfig) Key() string {
	if s.StoreCode != "" {
		return s.StoreCode
	}
	return s.Code
}

// StoreList is the set of store views available on the backend.
type StoreList []StoreConfig

// HasMultiple reports whether there is anything to switch between.
func (l StoreList) HasMultiple() bool {
	return len(l) > 1
}

// ByCode indexes the stores by Key.
func (l StoreList) ByCode() map[string]StoreConfig {
	out := make(map[string]StoreConfig, len(l))
	for _, s := range l {
		out[s.Key()] = s
	}
	return out
}

// Current returns the store whose key is code, or nil.
func (l StoreList) Current(code string) *StoreConfig {
	for i := range l {
		if l[i].Key() == code {
			return &l[i]
		}
	}
	return nil
}

// SchemaData is the data object of an introspection query.
type SchemaData struct {
	Schema *Schema `json:"__schema,omitempty"`
}

type Schema struct {
	Types []Type `json:"types"`
}

// Type is one entry of __schema.types. It keeps the exact JSON it was
// decoded from so re-encoding does not drop fields.
type Type struct {
	Name          string
	Kind          string
	PossibleTypes json.RawMessage

	raw json.RawMessage
}

type typeFields struct {
	Name          string          `json:"name"`
	Kind          string          `json:"kind"`
	PossibleTypes json.RawMessage `json:"possibleTypes"`
}

func (t *Type) UnmarshalJSON(b []byte) error {
	var f typeFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	t.Name = f.Name
	t.Kind = f.Kind
	t.PossibleTypes = f.PossibleTypes
	t.raw = append(json.RawMessage(nil), b...)

	return nil
}

func (t Type) MarshalJSON() ([]byte, error) {
	if t.raw != nil {
		return t.raw, nil
	}

	f := typeFields{Name: t.Name, Kind: t.Kind, PossibleTypes: t.PossibleTypes}
	if f.PossibleTypes == nil {
		f.PossibleTypes = json.RawMessage("null")
	}

	return json.Marshal(f)
}

// HasPossibleTypes reports whether possibleTypes holds a truthy value:
// anything except absent, null, false, 0 and "".
func (t Type) HasPossibleTypes() bool {
	return truthy(t.PossibleTypes)
}

// PossibleTypeNames decodes possibleTypes as a list of {name} objects.
func (t Type) PossibleTypeNames() ([]string, error) {
	var entries []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(t.PossibleTypes, &entries); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	return names, nil
}

func truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return false
	}

	switch string(v) {
	case "null", "false", `""`:
		return false
	}

	if f, err := strconv.ParseFloat(string(v), 64); err == nil {
		return f != 0
	}

	return true
}
