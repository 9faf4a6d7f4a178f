// SPDX-License-Identifier: EPL-2.0

package audframe

import "errors"

var (
	// ErrInvalidChunkSize indicates a non-positive chunk size option.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrNilStage indicates a nil source, sink or pipeline.
	ErrNilStage = errors.New("source, sink and pipeline are required")
)
