//go:build go1.18
// +build go1.18

package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("aaaa"))
	f.Add([]byte("abracadabra"))
	f.Add(words(1, 4096))
	f.Fuzz(func(t *testing.T, source []byte) {
		compressed, err := Compress(source)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range testStrategies {
			data, err := DecompressStrategy(compressed, s)
			if err != nil {
				t.Fatal(s, err)
			}
			if !bytes.Equal(data, source) {
				t.Fatal(s, diff(data, source))
			}
		}
	})
}

func FuzzDecompress(f *testing.F) {
	valid, _ := Compress([]byte("abracadabra"))
	f.Add(valid)
	f.Add([]byte{0x02, 0xb0, 0x80, 0x04, 0x00})
	f.Add([]byte{0x80})
	f.Fuzz(func(t *testing.T, src []byte) {
		byTree, errTree := DecompressStrategy(src, TreeStrategy)
		byTable, errTable := DecompressStrategy(src, TableStrategy)
		if errors.Is(errTable, ErrCodeTooLong) {
			// a tree too deep for a table only fails the table strategy
			return
		}
		if (errTree == nil) != (errTable == nil) {
			t.Fatal("strategies disagree:", errTree, errTable)
		}
		if errTree != nil {
			return
		}
		if !bytes.Equal(byTree, byTable) {
			t.Fatal("strategies decode differently")
		}
	})
}
