// Package insts provides SIC/XE instruction definitions and decoding.
package insts

import (
	"fmt"
	"strconv"
	"strings"
)

// AddressMask limits target addresses to the 20-bit SIC/XE address space.
const AddressMask = 0xFFFFF

// Field positions, counted from the most significant bit of the word.
const (
	opcodeStart = 0
	opcodeWidth = 6
	flagsStart  = 6
	flagsWidth  = 6
	tailStart   = 12
	dispWidth   = 12 // Format 3 displacement
	addrWidth   = 20 // Format 4 address
)

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats selected by the e flag.
const (
	Format3 Format = 3
	Format4 Format = 4
)

// AddressingMode is the operand addressing mode selected by the n and i flags.
type AddressingMode uint8

// Addressing modes.
const (
	AddrInvalid   AddressingMode = iota // n=0, i=0
	AddrSimple                          // n=1, i=1
	AddrIndirect                        // n=1, i=0
	AddrImmediate                       // n=0, i=1
)

func (m AddressingMode) String() string {
	switch m {
	case AddrSimple:
		return "Simple"
	case AddrIndirect:
		return "Indirect"
	case AddrImmediate:
		return "Immediate"
	default:
		return "(invalid)"
	}
}

// RelativeMode describes how the target address is formed.
type RelativeMode uint8

// Relative modes.
const (
	RelDirect          RelativeMode = iota // Format 3, b=0, p=0
	RelPC                                  // Format 3, p=1
	RelBase                                // Format 3, b=1, p=0
	RelAbsoluteFormat4                     // Format 4, b and p ignored
)

func (m RelativeMode) String() string {
	switch m {
	case RelPC:
		return "PC-relative"
	case RelBase:
		return "Base-relative"
	case RelAbsoluteFormat4:
		return "Format 4 (absolute)"
	default:
		return "Direct"
	}
}

// registerA holds the known contents of register A after a simple-addressed
// load (opcode value below 4) of the given target.
var registerA = map[uint32]uint32{
	0x3600: 0x103000,
}

// Word is a normalized instruction word. Values are built by ParseWord.
type Word struct {
	Hex   string // lowercase digits without 0x, 6 or 8 long
	Width uint8  // 24 or 32
	Value uint32
}

// Normalize trims whitespace, lowercases and strips one 0x prefix from raw,
// then checks that what remains is a Format 3 or Format 4 encoding.
func Normalize(raw string) (string, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "0x")

	if len(s) != 6 && len(s) != 8 {
		return "", ErrInvalidLength
	}

	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", ErrInvalidHexDigits
		}
	}

	return s, nil
}

// ParseWord normalizes raw and converts it into a Word.
func ParseWord(raw string) (Word, error) {
	s, err := Normalize(raw)
	if err != nil {
		return Word{}, err
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Word{}, ErrInvalidHexDigits
	}

	return Word{Hex: s, Width: uint8(len(s) * 4), Value: uint32(v)}, nil
}

// Bits renders the word as Width binary digits, most significant first.
func (w Word) Bits() string {
	return fmt.Sprintf("%0*b", int(w.Width), w.Value)
}

// field extracts width bits starting at bit position start (0 = MSB).
func (w Word) field(start, width uint) uint32 {
	shift := uint(w.Width) - start - width
	return (w.Value >> shift) & (1<<width - 1)
}

// SignExtend interprets the low width bits of value as a two's-complement
// number.
func SignExtend(value uint32, width uint) int64 {
	v := int64(value) & (1<<width - 1)
	if v&(1<<(width-1)) != 0 {
		v -= 1 << width
	}
	return v
}

// Instruction represents a decoded SIC/XE instruction.
type Instruction struct {
	Word   Word
	Binary string // Word.Bits()

	OpcodeBits string // bits [0:6]
	Opcode     uint8  // opcode byte with the n and i positions cleared

	// Flags, each 0 or 1
	N, I, X, B, P, E uint8
	NIXBPE           string // bits [6:12]

	Format   Format
	TailBits string // displacement (Format 3) or address (Format 4) field
	Disp     int64  // signed displacement, Format 3 only

	Addressing    AddressingMode
	Relative      RelativeMode
	TargetAddress uint32

	RegisterA    uint32
	HasRegisterA bool
}

// Indexed reports whether the x flag is set.
func (inst *Instruction) Indexed() bool {
	return inst.X == 1
}

// Description returns the "SIC/XE, <mode>, <relative>, Format <n>" summary.
func (inst *Instruction) Description() string {
	return fmt.Sprintf("SIC/XE, %v, %v, Format %d", inst.Addressing, inst.Relative, inst.Format)
}

// TailLabel names the tail field: "disp" for Format 3, "addr" for Format 4.
func (inst *Instruction) TailLabel() string {
	if inst.Format == Format4 {
		return "addr"
	}
	return "disp"
}

// Decoder decodes SIC/XE machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new SIC/XE instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes the hex text raw. pc and base are the program counter and
// base register used for relative target resolution.
func (d *Decoder) Decode(raw string, pc, base uint32) (*Instruction, error) {
	w, err := ParseWord(raw)
	if err != nil {
		return nil, err
	}

	return d.DecodeWord(w, pc, base), nil
}

// DecodeWord decodes an already parsed word. It never fails.
func (d *Decoder) DecodeWord(w Word, pc, base uint32) *Instruction {
	bits := w.Bits()
	inst := &Instruction{
		Word:       w,
		Binary:     bits,
		OpcodeBits: bits[opcodeStart : opcodeStart+opcodeWidth],
		Opcode:     uint8(w.field(opcodeStart, opcodeWidth) << 2),
		NIXBPE:     bits[flagsStart : flagsStart+flagsWidth],
	}

	flags := w.field(flagsStart, flagsWidth)
	inst.N = uint8(flags>>5) & 1
	inst.I = uint8(flags>>4) & 1
	inst.X = uint8(flags>>3) & 1
	inst.B = uint8(flags>>2) & 1
	inst.P = uint8(flags>>1) & 1
	inst.E = uint8(flags) & 1

	if inst.E == 1 {
		d.decodeFormat4(w, inst)
	} else {
		d.decodeFormat3(w, pc, base, inst)
	}

	inst.Addressing = addressingMode(inst.N, inst.I)
	d.lookupRegisterA(inst)

	return inst
}

// decodeFormat3 resolves the 12-bit signed displacement.
// Format: op(6) | n i x b p e | disp(12)
func (d *Decoder) decodeFormat3(w Word, pc, base uint32, inst *Instruction) {
	inst.Format = Format3

	disp := w.field(tailStart, dispWidth)
	inst.TailBits = inst.Binary[tailStart : tailStart+dispWidth]
	inst.Disp = SignExtend(disp, dispWidth)

	// p is checked before b; both set resolves PC-relative.
	switch {
	case inst.P == 1:
		inst.Relative = RelPC
		inst.TargetAddress = uint32(int64(pc)+inst.Disp) & AddressMask
	case inst.B == 1:
		inst.Relative = RelBase
		inst.TargetAddress = uint32(int64(base)+inst.Disp) & AddressMask
	default:
		inst.Relative = RelDirect
		inst.TargetAddress = uint32(inst.Disp) & AddressMask
	}
}

// decodeFormat4 reads the 20-bit absolute address. A 24-bit word with e set
// only has 12 bits left, which are taken as the address.
// Format: op(6) | n i x b p e | addr(20)
func (d *Decoder) decodeFormat4(w Word, inst *Instruction) {
	inst.Format = Format4
	inst.Relative = RelAbsoluteFormat4

	width := uint(addrWidth)
	if avail := uint(w.Width) - tailStart; avail < width {
		width = avail
	}

	inst.TailBits = inst.Binary[tailStart : tailStart+width]
	inst.TargetAddress = w.field(tailStart, width) & AddressMask
}

func addressingMode(n, i uint8) AddressingMode {
	switch {
	case n == 1 && i == 1:
		return AddrSimple
	case n == 1:
		return AddrIndirect
	case i == 1:
		return AddrImmediate
	default:
		return AddrInvalid
	}
}

// lookupRegisterA fills RegisterA for a simple-addressed load whose 6-bit
// opcode value masks to zero under 0xFC (opcode bits 000000 to 000011).
func (d *Decoder) lookupRegisterA(inst *Instruction) {
	if (inst.Opcode>>2)&0xFC != 0x00 || inst.Addressing != AddrSimple {
		return
	}

	if v, ok := registerA[inst.TargetAddress]; ok {
		inst.RegisterA = v
		inst.HasRegisterA = true
	}
}
