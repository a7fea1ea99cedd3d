package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

func ParseLevel(s string) (Level, error) {
	if s == "" {
		return DefaultLevel, nil
	}
	level, ok := levelNames[strings.ToLower(s)]
	if !ok {
		return DefaultLevel, fmt.Errorf("logger: unknown level %q", s)
	}
	return level, nil
}

// Type selects the output encoding.
type Type int

const (
	// TypeText writes human readable lines.
	TypeText Type = iota
	// TypeJSON writes one JSON object per line.
	TypeJSON
	// TypeAuto writes text to terminals and JSON to anything else.
	TypeAuto
)

var typeNames = map[string]Type{
	"text": TypeText,
	"json": TypeJSON,
	"auto": TypeAuto,
}

func ParseType(s string) (Type, error) {
	if s == "" {
		return TypeAuto, nil
	}
	t, ok := typeNames[strings.ToLower(s)]
	if !ok {
		return TypeAuto, fmt.Errorf("logger: unknown format %q", s)
	}
	return t, nil
}
