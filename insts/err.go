package insts

import "github.com/sarchlab/sicxe/translate"

// decodeError is a sentinel whose text is looked up in the active message
// catalog each time it is printed.
type decodeError string

func (e decodeError) Error() string {
	return translate.From(string(e))
}

// Input errors returned by Normalize, ParseWord and Decoder.Decode.
var (
	ErrInvalidLength    error = decodeError("hex length must be 6 or 8 digits")
	ErrInvalidHexDigits error = decodeError("hex text contains non-hexadecimal characters")
)
