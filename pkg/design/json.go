package design

import (
	"encoding/json"
	"strings"
)

// The visual editor historically exported enum values in upper case
// ("CENTER", "XLARGE"). Decode them case-insensitively so older documents
// keep working; canonical form is lower case.

// UnmarshalJSON decodes an Alignment case-insensitively
func (a *Alignment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = Alignment(strings.ToLower(s))
	return nil
}

// UnmarshalJSON decodes a TextSize case-insensitively
func (s *TextSize) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = TextSize(strings.ToLower(v))
	return nil
}
