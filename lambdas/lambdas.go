// Package lambdas wires concrete behaviours into the slices utilities.
package lambdas

import (
	"fmt"
	"io"

	"github.com/dlshle/fakelambda/errors"
	"github.com/dlshle/fakelambda/slices"
)

// NonEmpty reports whether elem has at least one byte.
func NonEmpty(elem string) bool {
	return len(elem) > 0
}

func Decorate(elem string) string {
	return fmt.Sprintf("-- %s --", elem)
}

func Emphasize(elem string) string {
	return fmt.Sprintf("** %s **", elem)
}

// FilterData drops the empty strings of data.
func FilterData(data []string) []string {
	return slices.Filter(data, NonEmpty)
}

func MapData(data []string) []string {
	return slices.Map(data, Decorate)
}

// FormatData writes every element of data to w, one write per element and
// no separator. The first failed write stops the loop.
func FormatData(w io.Writer, data []string) error {
	return slices.ForEachErr(data, func(elem string) error {
		if _, err := io.WriteString(w, Emphasize(elem)); err != nil {
			return errors.WrapWithStackTrace(err)
		}
		return nil
	})
}
