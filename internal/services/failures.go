package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrRecordNotFound  = errors.New("record not found")
)

// ValidationError carries per-field messages back to the form that submitted
// them.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
