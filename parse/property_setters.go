// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import "fmt"

// setOnceProperty assigns value to *field, returning ErrDuplicateProperty
// if it has already been set (the zero value of T is the "unset" sentinel).
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
func setOnceProperty[T comparable](field *T, value T, propertyName, componentType string) error {
	var zero T
	if *field != zero {
		return fmt.Errorf(errDuplicatePropertyFormat, ErrDuplicateProperty, propertyName, componentType)
	}
	*field = value
	return nil
}

// setOnceFlag is like setOnceProperty but for fields whose "set" state is
// tracked by a separate boolean rather than a zero-value sentinel. No
// property case calls it; model.Value fields are assigned directly.
func setOnceFlag(set *bool, propertyName, componentType string) error {
	if *set {
		return fmt.Errorf(errDuplicatePropertyFormat, ErrDuplicateProperty, propertyName, componentType)
	}
	*set = true
	return nil
}
