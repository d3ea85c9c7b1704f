package launch

// Clipboard abstracts clipboard reads for testability.
type Clipboard interface {
	GetText() (string, error)
}
