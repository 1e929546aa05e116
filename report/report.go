// Package report prints decoded instructions as a line-oriented text report.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/sicxe/insts"
	"github.com/sarchlab/sicxe/translate"
)

// Options controls which optional lines are printed.
type Options struct {
	// ShowHex prints the normalized input in upper case before the fields.
	ShowHex bool
}

// Write prints inst to w, one field per line.
func Write(w io.Writer, inst *insts.Instruction, opts Options) error {
	var buf bytes.Buffer

	if opts.ShowHex {
		fmt.Fprintf(&buf, "%s%s\n", translate.From("Hex input : "), strings.ToUpper(inst.Word.Hex))
	}

	fmt.Fprintf(&buf, "Binary : %s\n", inst.Binary)
	fmt.Fprintf(&buf, "Opcode : %s\n", inst.OpcodeBits)
	fmt.Fprintf(&buf, "nixbpe : %s (n=%d i=%d x=%d b=%d p=%d e=%d)\n",
		inst.NIXBPE, inst.N, inst.I, inst.X, inst.B, inst.P, inst.E)
	fmt.Fprintf(&buf, "Flag bit : %s\n", inst.Description())
	fmt.Fprintf(&buf, "%s : %s\n", inst.TailLabel(), inst.TailBits)
	fmt.Fprintf(&buf, "Target Address = 0x%04X\n", inst.TargetAddress)

	if inst.HasRegisterA {
		fmt.Fprintf(&buf, "Register A value = 0x%06X\n", inst.RegisterA)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteError prints the single-line failure message for err.
func WriteError(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, translate.From("error: %v", err))
	return werr
}
