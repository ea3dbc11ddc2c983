package domain

// DocumentExtractor is the port for pulling plain text out of a source
// document. Implementations dispatch on the file extension and fail with
// ErrUnsupportedFormat, ErrNotFound or ErrExtraction codes; any such
// failure is fatal for that document only.
type DocumentExtractor interface {
	ExtractText(path string) (string, error)
}
