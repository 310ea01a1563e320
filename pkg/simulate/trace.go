package simulate

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Kind is a cache operation.
type Kind string

const (
	OpGet    Kind = "get"
	OpSet    Kind = "set"
	OpHas    Kind = "has"
	OpDelete Kind = "delete"
	OpClear  Kind = "clear"
)

// Op is a single step of a trace.
type Op struct {
	Kind  Kind   `yaml:"op"`
	Key   string `yaml:"key,omitempty"`
	Value string `yaml:"value,omitempty"`
}

// Trace is a replayable workload.
type Trace struct {
	Name        string  `yaml:"name"`
	Capacity    float64 `yaml:"capacity"`
	ReadThrough bool    `yaml:"read_through"`
	Ops         []Op    `yaml:"ops"`
}

// LoadTrace decodes a YAML trace from r and validates its operations.
func LoadTrace(r io.Reader) (Trace, error) {
	var tr Trace
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tr); err != nil {
		if errors.Is(err, io.EOF) {
			return Trace{}, ErrEmptyTrace
		}
		return Trace{}, errors.Join(ErrInvalidTrace, err)
	}
	if err := tr.Validate(); err != nil {
		return Trace{}, err
	}
	return tr, nil
}

// Validate reports the first unsupported operation, or ErrEmptyTrace.
func (tr Trace) Validate() error {
	if len(tr.Ops) == 0 {
		return ErrEmptyTrace
	}
	for i, op := range tr.Ops {
		switch op.Kind {
		case OpGet, OpSet, OpHas, OpDelete, OpClear:
		default:
			return fmt.Errorf("%w %q at index %d", ErrUnknownOp, op.Kind, i)
		}
	}
	return nil
}

// Encode writes tr as YAML.
func (tr Trace) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return err
	}
	return enc.Close()
}
