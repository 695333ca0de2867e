// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	ErrBufferUnderrun = errors.New("codec: buffer underrun")
	ErrInvalidLength  = errors.New("codec: integer length must be 2 or 4")
)
