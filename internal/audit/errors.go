// SPDX-License-Identifier: Apache-2.0

package audit

import "errors"

// Sentinel errors for document intake. Field-level extraction never fails.
var (
	ErrEmptyContent      = errors.New("content is required")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrTextLayer         = errors.New("text layer extraction failed")
)
