// Package input parses chart configuration typed by a user.
package input

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MaxRunLengths is the largest number of entries a run-length vector may
// have. It matches the capacity of grid.BigGrid.
const MaxRunLengths = 100

// MaxRunTotal is the largest sum of a run-length vector, the number of
// rows or columns of the stretched chart.
const MaxRunTotal = 200

// ValidationError describes input that was rejected. Message is meant to be
// shown next to the input it concerns.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the validator shared by packages that check
// user-supplied or persisted values.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// run_total bounds the sum of a slice of run lengths.
		_ = v.RegisterValidation("run_total", func(fl validator.FieldLevel) bool {
			total, ok := runTotal(fl.Field())
			return ok && total <= MaxRunTotal
		})

		validateInst = v
	})
	return validateInst
}

func runTotal(v reflect.Value) (int, bool) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return 0, false
	}
	total := 0
	for i := range v.Len() {
		e := v.Index(i)
		switch {
		case e.CanInt():
			total += int(e.Int())
		case e.CanUint():
			total += int(e.Uint())
		default:
			return 0, false
		}
	}
	return total, true
}

type runLengths struct {
	Runs []int `validate:"min=1,max=100,run_total,dive,min=1,max=255"`
}

// ParseRunLengths parses a comma separated list of run lengths such as
// "1, 2, 3". field names the input in the returned *ValidationError.
func ParseRunLengths(field, text string) ([]uint8, error) {
	for _, ch := range text {
		if ch != ',' && !isSpace(ch) && (ch < '0' || ch > '9') {
			return nil, &ValidationError{
				Field:   field,
				Message: "Input can only contain digits, commas, and white space.",
			}
		}
	}

	pieces := strings.Split(text, ",")
	runs := runLengths{Runs: make([]int, 0, len(pieces))}
	for i, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			if strings.TrimSpace(text) == "" {
				break
			}
			return nil, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("entry %d is empty", i+1),
			}
		}
		n, err := strconv.Atoi(piece)
		if err != nil {
			return nil, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("entry %d: %q is not a number", i+1, piece),
				Err:     err,
			}
		}
		runs.Runs = append(runs.Runs, n)
	}

	if err := Validator().Struct(runs); err != nil {
		return nil, convertValidationError(field, runs.Runs, err)
	}

	out := make([]uint8, len(runs.Runs))
	for i, n := range runs.Runs {
		out[i] = uint8(n)
	}
	return out, nil
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func convertValidationError(field string, runs []int, err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return &ValidationError{Field: field, Message: err.Error(), Err: err}
	}
	ve := ves[0]
	var msg string
	switch {
	case ve.Field() == "Runs" && ve.Tag() == "min":
		msg = "at least one entry is required"
	case ve.Field() == "Runs" && ve.Tag() == "max":
		msg = fmt.Sprintf("at most %d entries are allowed, got %d", MaxRunLengths, len(runs))
	case ve.Tag() == "run_total":
		total, _ := runTotal(reflect.ValueOf(runs))
		msg = fmt.Sprintf("entries add up to %d, at most %d are allowed", total, MaxRunTotal)
	default:
		msg = fmt.Sprintf("entries must be between 1 and 255, got %v", ve.Value())
	}
	return &ValidationError{Field: field, Message: msg, Err: err}
}

// FormatRunLengths is the inverse of ParseRunLengths.
func FormatRunLengths(runs []uint8) string {
	parts := make([]string, len(runs))
	for i, n := range runs {
		parts[i] = strconv.Itoa(int(n))
	}
	return strings.Join(parts, ", ")
}
