package mock

import "github.com/Birds-of-Eden/faqdoc"

var _ faqdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of faqdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
