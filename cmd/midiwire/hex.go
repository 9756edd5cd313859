package main

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// parseHex joins args and decodes them as hex bytes. Spaces, commas, colons
// and "0x" prefixes are ignored, so "90 3c 64", "0x90,0x3C,0x64" and
// "90:3C:64" all give the same bytes.
func parseHex(args ...string) ([]byte, error) {
	s := strings.Join(args, " ")
	s = strings.ReplaceAll(s, "0x", "")
	s = strings.ReplaceAll(s, "0X", "")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ',', ':', '-':
			return -1
		}
		return r
	}, s)

	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits in %q", strings.Join(args, " "))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return b, nil
}

func formatHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// spacedHex renders b as "90 3C 64"
func spacedHex(b []byte) string {
	return fmt.Sprintf("% X", b)
}
