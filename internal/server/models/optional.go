package models

import "encoding/json"

// OptionalString distinguishes an absent JSON field from an explicit null.
// Set is true whenever the field was present; Value is nil for null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// Some returns a present, non-null value.
func Some(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// Null returns a present null value.
func Null() OptionalString {
	return OptionalString{Set: true}
}
