// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid analysis config")
)
