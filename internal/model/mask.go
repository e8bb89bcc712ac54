package model

// MaskToken records one protected fragment replaced during masking.
// Index is only meaningful inside the masking cycle of a single literal.
type MaskToken struct {
	Index    int
	Fragment string
	Rule     string
}
