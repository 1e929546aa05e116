// Package insts provides SIC/XE instruction definitions and decoding.
//
// This package decodes a single SIC/XE machine instruction, written as six
// (Format 3) or eight (Format 4) hexadecimal digits, into its fields:
//   - Opcode bits and the six nixbpe flags
//   - The 12-bit signed displacement (Format 3) or 20-bit address (Format 4)
//   - Addressing mode (simple, indirect, immediate) from n and i
//   - Relative mode (PC-relative, base-relative, direct) from b and p
//   - The resolved 20-bit target address
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.Decode("032600", 0x3000, 0x0000)
//	fmt.Printf("%s, target 0x%04X\n", inst.Description(), inst.TargetAddress)
package insts
