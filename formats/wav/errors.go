// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrRiffInvalid       = errors.New("invalid RIFF/WAVE envelope")
	ErrFormatUnsupported = errors.New("unsupported format, want 8kHz 16-bit mono PCM")
	ErrDataChunkInvalid  = errors.New("invalid data chunk")
	ErrShortHeader       = errors.New("truncated chunk header")
)
