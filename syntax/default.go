package syntax

import "github.com/go-playground/validator/v10"

var v *validator.Validate

func init() {
	v = validator.New()
}

// Instance returns the shared validator used by Default.
func Instance() *validator.Validate {
	return v
}

// Default returns a Playground over the shared validator with default schemes.
func Default() *Playground {
	return NewPlayground(v)
}
