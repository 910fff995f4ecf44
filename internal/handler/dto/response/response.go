// Package response maps query views onto the JSON shapes the API serves.
// Views and responses share field names on purpose; list conversions go
// through copier so the mapping stays declarative.
package response

import "github.com/jinzhu/copier"

func copyList[S any, D any](src []S) ([]D, error) {
	dst := make([]D, 0, len(src))
	if err := copier.Copy(&dst, &src); err != nil {
		return nil, err
	}
	return dst, nil
}
