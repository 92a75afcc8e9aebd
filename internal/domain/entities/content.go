package entities

// ContentStatus classifies the outcome of reading a file from a source.
type ContentStatus int

const (
	// ContentOK means Data holds the raw bytes of the file.
	ContentOK ContentStatus = iota
	// ContentMissingEncoding means the source returned the file without any
	// transfer encoding (e.g. GitHub blobs larger than 1 MB).
	ContentMissingEncoding
	// ContentUnavailable means the file could not be fetched or decoded.
	ContentUnavailable
)

// Content is the result of reading a file.
type Content struct {
	Status ContentStatus
	Data   []byte
	Err    error
}

// ContentOf wraps raw bytes in a successful result.
func ContentOf(data []byte) Content {
	return Content{Status: ContentOK, Data: data}
}

// ContentMissing builds a result for a file served without an encoding.
func ContentMissing() Content {
	return Content{Status: ContentMissingEncoding}
}

// ContentFailed builds a result for a file that could not be read.
func ContentFailed(err error) Content {
	return Content{Status: ContentUnavailable, Err: err}
}
