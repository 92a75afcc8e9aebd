package commands

// DecodeText exports decodeText for testing.
var DecodeText = decodeText //nolint:gochecknoglobals // test export

// Decode outcomes exported for testing.
//
//nolint:gochecknoglobals // test export
var (
	DecodedUTF8   = decodedUTF8
	DecodedLatin1 = decodedLatin1
	NotDecodable  = notDecodable
)
