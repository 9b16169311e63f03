package response

import (
	"github.com/jinzhu/copier"
)

// copyInto maps a query view onto its response shape by field name.
func copyInto[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic("response mapping: " + err.Error())
	}
	return &dst
}
