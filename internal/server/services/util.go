package services

import (
	"strings"

	"github.com/google/uuid"
)

// newID is a seam for deterministic ids in tests.
var newID = uuid.NewString

// nonEmpty maps nil and blank strings to nil.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
