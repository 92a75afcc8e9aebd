package commands

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

type decodeOutcome int

const (
	decodedUTF8 decodeOutcome = iota
	decodedLatin1
	notDecodable
)

// decodeText decodes data as UTF-8 and, when latinFallback is set, retries
// as Latin-1 (ISO-8859-1).
func decodeText(data []byte, latinFallback bool) (string, decodeOutcome) {
	if utf8.Valid(data) {
		return string(data), decodedUTF8
	}
	if !latinFallback {
		return "", notDecodable
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", notDecodable
	}
	return string(decoded), decodedLatin1
}
