package logger

import (
	"fmt"
	"strings"
)

// Type selects the slog handler used to format records.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	default:
		return TypeText, fmt.Errorf("logger: unknown type %q", name)
	}
}
