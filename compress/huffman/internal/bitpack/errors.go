// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitpack

import (
	"fmt"
	"strconv"
)

// UnknownSymbolError reports a byte that has no code in the table.
type UnknownSymbolError byte

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: no code for symbol %#02x", byte(e))
}

// CorruptPaddingError reports a padding header outside [1,8] or longer
// than the payload. It is -1 when the header byte is missing.
type CorruptPaddingError int

func (e CorruptPaddingError) Error() string {
	if e < 0 {
		return "huffman: missing padding header"
	}
	return "huffman: corrupt padding length " + strconv.Itoa(int(e))
}

// InvalidCodeError reports the payload bit offset at which the data
// stopped forming complete codes.
type InvalidCodeError int64

func (e InvalidCodeError) Error() string {
	return "huffman: invalid code at bit offset " + strconv.FormatInt(int64(e), 10)
}
