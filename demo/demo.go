// Package demo runs the list aliasing demonstration.
//
// It builds one list, binds a second name to it, writes through the first name and
// reports what both names observe. In ModeAlias the second name shares storage with
// the first; in ModeCopy it is a shallow copy, which shows the contrast.
package demo

import (
	"io"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/listalias/seq"
)

// Fixture is the initial contents of the demonstrated list.
var Fixture = []string{"apple", "bob", "cat", "drone"}

// Replacement is written at index 0 through the first binding.
const Replacement = "qqrq"

// Mode selects how the second binding is created.
type Mode string

const (
	// ModeAlias binds the second name to the same storage.
	ModeAlias Mode = "alias"

	// ModeCopy binds the second name to a shallow copy.
	ModeCopy Mode = "copy"
)

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAlias, ModeCopy:
		return m, nil
	default:
		return "", UnknownModeError{Mode: s}
	}
}

// UnknownModeError is returned for a mode other than ModeAlias or ModeCopy.
type UnknownModeError struct{ Mode string }

// Error implements the error interface.
func (e UnknownModeError) Error() string {
	return "demo: unknown mode " + strconv.Quote(e.Mode)
}

// Report is what the two bindings observed after the write.
type Report struct {
	Mode Mode `yaml:"mode"`

	// First and Second are the rendered contents seen through each binding.
	First  string `yaml:"first"`
	Second string `yaml:"second"`

	FirstID  seq.Identity `yaml:"first_id"`
	SecondID seq.Identity `yaml:"second_id"`

	// Shared is true when both bindings refer to the same storage.
	Shared bool `yaml:"shared"`
}

// Run performs the demonstration. A nil log is treated as zap.NewNop().
func Run(log *zap.Logger, mode Mode) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	first := seq.New(Fixture...)

	var second *seq.List[string]
	switch mode {
	case ModeAlias:
		second = first.Alias()
	case ModeCopy:
		second = first.Copy()
	default:
		return Report{}, UnknownModeError{Mode: string(mode)}
	}
	log.Debug("second binding created",
		zap.String("mode", string(mode)),
		zap.Stringer("first_id", first.ID()),
		zap.Stringer("second_id", second.ID()),
	)

	if err := first.Set(0, Replacement); err != nil {
		return Report{}, err
	}
	log.Debug("wrote through first binding", zap.Int("index", 0), zap.String("value", Replacement))

	return Report{
		Mode:     mode,
		First:    first.String(),
		Second:   second.String(),
		FirstID:  first.ID(),
		SecondID: second.ID(),
		Shared:   seq.SameStorage(first, second),
	}, nil
}

// WriteText writes the four demonstration lines: contents through each binding,
// then the identity of each binding.
func (r Report) WriteText(w io.Writer) error {
	for _, line := range []string{r.First, r.Second, r.FirstID.String(), r.SecondID.String()} {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML writes the report as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
