package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Precedence selects how binary operators group.
type Precedence string

const (
	// PrecedenceFlat gives every operator one level and parses the right
	// operand as a full expression: 2 + 3 * 4 - 1 is 2 + (3 * (4 - 1)).
	PrecedenceFlat Precedence = "flat"
	// PrecedenceStandard uses the usual tiers, left associative.
	PrecedenceStandard Precedence = "standard"
)

// BlockValue selects what a block yields when no return fires.
type BlockValue string

const (
	BlockValueUnit BlockValue = "unit"
	BlockValueLast BlockValue = "last"
)

// Dialect holds the language switches read from sim.yaml.
type Dialect struct {
	Precedence Precedence `yaml:"precedence"`
	BlockValue BlockValue `yaml:"block_value"`
	// MaxDepth is the maximum number of nested evaluations; 0 disables the check.
	MaxDepth int `yaml:"max_depth"`
}

func Default() *Dialect {
	return &Dialect{
		Precedence: PrecedenceFlat,
		BlockValue: BlockValueUnit,
		MaxDepth:   DefaultMaxDepth,
	}
}

// Load reads a dialect file. Missing keys keep their defaults.
func Load(path string) (*Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a dialect document. Unknown keys are rejected.
func Parse(data []byte) (*Dialect, error) {
	d := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dialect) Validate() error {
	switch d.Precedence {
	case PrecedenceFlat, PrecedenceStandard:
	default:
		return fmt.Errorf("precedence: unknown value %q (want %q or %q)", d.Precedence, PrecedenceFlat, PrecedenceStandard)
	}
	switch d.BlockValue {
	case BlockValueUnit, BlockValueLast:
	default:
		return fmt.Errorf("block_value: unknown value %q (want %q or %q)", d.BlockValue, BlockValueUnit, BlockValueLast)
	}
	if d.MaxDepth < 0 {
		return fmt.Errorf("max_depth: must not be negative, got %d", d.MaxDepth)
	}
	return nil
}
