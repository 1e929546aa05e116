// Package main provides the entry point for sicxe.
// sicxe decodes a single SIC/XE Format 3 or Format 4 instruction.
//
// For the full CLI, use: go run ./cmd/sicxe
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("sicxe - SIC/XE Instruction Decoder")
	fmt.Println("")
	fmt.Println("Usage: sicxe [options] [hex ...]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -pc       Program counter (default 0x3000)")
	fmt.Println("  -base     Base register (default 0x0000)")
	fmt.Println("  -config   Path to decode configuration JSON file")
	fmt.Println("  -x        Print the normalized hex input")
	fmt.Println("  -lang     Output language: ko, en or auto")
	fmt.Println("  -v        Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/sicxe' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/sicxe' instead.")
	}
}
