// Package config holds the register values and output options used when
// decoding an instruction.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sarchlab/sicxe/insts"
)

// DecodeConfig holds the machine state and presentation options for a
// decode run.
type DecodeConfig struct {
	// ProgramCounter is the PC used for PC-relative targets.
	// Default: 0x3000.
	ProgramCounter uint32 `json:"program_counter"`

	// BaseRegister is the B register used for base-relative targets.
	// Default: 0x0000.
	BaseRegister uint32 `json:"base_register"`

	// ShowHex prints the normalized input as the first report line.
	// Default: false.
	ShowHex bool `json:"show_hex"`

	// Language selects the output language: "ko", "en" or "auto".
	// Default: "ko".
	Language string `json:"language"`
}

// DefaultDecodeConfig returns a DecodeConfig with the default register values.
func DefaultDecodeConfig() *DecodeConfig {
	return &DecodeConfig{
		ProgramCounter: 0x3000,
		BaseRegister:   0x0000,
		ShowHex:        false,
		Language:       "ko",
	}
}

// LoadConfig loads a DecodeConfig from a JSON file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*DecodeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read decode config file: %w", err)
	}

	config := DefaultDecodeConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse decode config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a DecodeConfig to a JSON file.
func (c *DecodeConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize decode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write decode config file: %w", err)
	}

	return nil
}

// Validate checks that both registers fit in the 20-bit address space.
func (c *DecodeConfig) Validate() error {
	if c.ProgramCounter > insts.AddressMask {
		return fmt.Errorf("program_counter 0x%X exceeds 0x%X", c.ProgramCounter, insts.AddressMask)
	}
	if c.BaseRegister > insts.AddressMask {
		return fmt.Errorf("base_register 0x%X exceeds 0x%X", c.BaseRegister, insts.AddressMask)
	}

	return nil
}

// ParseAddress parses a register value written in decimal or with a 0x
// prefix.
func ParseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if v > insts.AddressMask {
		return 0, fmt.Errorf("address 0x%X exceeds 0x%X", v, insts.AddressMask)
	}

	return uint32(v), nil
}
