package report

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/resistor-bands/internal/band"
	"github.com/shinji-kodama/resistor-bands/internal/model"
)

// resultDoc is the JSON/YAML output structure for a decoded resistor.
type resultDoc struct {
	Bands                      []string `json:"bands" yaml:"bands"`
	BandCount                  int      `json:"bandCount" yaml:"bandCount"`
	ResistanceOhms             float64  `json:"resistanceOhms" yaml:"resistanceOhms"`
	TolerancePercent           float64  `json:"tolerancePercent" yaml:"tolerancePercent"`
	TemperatureCoefficientPpmK *float64 `json:"temperatureCoefficientPpmK,omitempty" yaml:"temperatureCoefficientPpmK,omitempty"`
	MinOhms                    float64  `json:"minOhms" yaml:"minOhms"`
	MaxOhms                    float64  `json:"maxOhms" yaml:"maxOhms"`
}

func newResultDoc(r *model.Result) (*resultDoc, error) {
	if r == nil {
		return nil, fmt.Errorf("no result to format")
	}
	return &resultDoc{
		Bands:                      model.ColorNames(r.Bands),
		BandCount:                  len(r.Bands),
		ResistanceOhms:             r.Resistance,
		TolerancePercent:           r.Tolerance,
		TemperatureCoefficientPpmK: r.TemperatureCoefficient,
		MinOhms:                    r.Min(),
		MaxOhms:                    r.Max(),
	}, nil
}

// errorDoc is the JSON/YAML error structure. The top-level "error" key
// wraps a message and, for band errors, the structured details.
type errorDoc struct {
	Error errorBody `json:"error" yaml:"error"`
}

type errorBody struct {
	Message  string   `json:"message" yaml:"message"`
	Detail   string   `json:"detail,omitempty" yaml:"detail,omitempty"`
	Kind     string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Role     string   `json:"role,omitempty" yaml:"role,omitempty"`
	Position int      `json:"position,omitempty" yaml:"position,omitempty"`
	Count    int      `json:"bandCount,omitempty" yaml:"bandCount,omitempty"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Got      *string  `json:"got,omitempty" yaml:"got,omitempty"`
}

func newErrorDoc(err error) errorDoc {
	var bandErr *band.Error
	if errors.As(err, &bandErr) {
		body := errorBody{
			Message:  bandErr.Error(),
			Kind:     bandErr.Kind.String(),
			Position: bandErr.Position,
			Count:    bandErr.Count,
			Expected: bandErr.Expected,
			Got:      &bandErr.Got,
		}
		if bandErr.Kind == band.KindInvalidRoleColor || bandErr.Kind == band.KindUnsupportedTempCoefficient {
			body.Role = bandErr.Role.String()
		}
		return errorDoc{Error: body}
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		body := errorBody{Message: cliErr.Message}
		if cliErr.Err != nil {
			body.Detail = cliErr.Err.Error()
		}
		return errorDoc{Error: body}
	}

	return errorDoc{Error: errorBody{Message: err.Error()}}
}

// tableDoc is the JSON/YAML structure of the role tables.
type tableDoc struct {
	Roles []roleDoc `json:"roles" yaml:"roles"`
}

type roleDoc struct {
	Role   string     `json:"role" yaml:"role"`
	Colors []colorDoc `json:"colors" yaml:"colors"`
}

type colorDoc struct {
	Color string `json:"color" yaml:"color"`

	// Value is omitted for permitted colors without a defined value.
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

func newTableDoc() tableDoc {
	var doc tableDoc
	for _, row := range tableRows() {
		if n := len(doc.Roles); n == 0 || doc.Roles[n-1].Role != row.role.String() {
			doc.Roles = append(doc.Roles, roleDoc{Role: row.role.String()})
		}
		last := &doc.Roles[len(doc.Roles)-1]
		last.Colors = append(last.Colors, colorDoc{Color: row.color.String(), Value: row.value})
	}
	return doc
}

// jsonFormatter renders indented JSON.
type jsonFormatter struct{}

func (jsonFormatter) Result(r *model.Result) (string, error) {
	doc, err := newResultDoc(r)
	if err != nil {
		return "", err
	}
	return marshalJSON(doc)
}

func (jsonFormatter) Error(err error) string {
	// errorDoc only holds strings and ints, so marshalling cannot fail.
	out, _ := marshalJSON(newErrorDoc(err))
	return out
}

func (jsonFormatter) Table() (string, error) {
	return marshalJSON(newTableDoc())
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// yamlFormatter renders YAML documents.
type yamlFormatter struct{}

func (yamlFormatter) Result(r *model.Result) (string, error) {
	doc, err := newResultDoc(r)
	if err != nil {
		return "", err
	}
	return marshalYAML(doc)
}

func (yamlFormatter) Error(err error) string {
	out, yamlErr := marshalYAML(newErrorDoc(err))
	if yamlErr != nil {
		return fmt.Sprintf("error:\n  message: %q\n", err.Error())
	}
	return out
}

func (yamlFormatter) Table() (string, error) {
	return marshalYAML(newTableDoc())
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return string(data), nil
}
