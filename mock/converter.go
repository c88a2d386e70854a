package mock

import "github.com/fwojciec/faqmine"

var _ faqmine.Converter = (*Converter)(nil)

// Converter is a mock implementation of faqmine.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
