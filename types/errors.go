/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package types

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInputClosed is returned when the input stream yields no further
	// lines. Read failures are marked with this sentinel so callers can
	// match it with errors.Is while the underlying cause is preserved.
	ErrInputClosed = errors.New("input closed")

	// ErrEmptyCandidates is returned when a caller supplies an empty
	// candidate set or list where a non-empty one is required.
	ErrEmptyCandidates = errors.New("no candidates provided")

	// ErrInvalidPageSize is returned when pagination is requested with a
	// non-positive page size.
	ErrInvalidPageSize = errors.New("page size must be greater than zero")

	// ErrRetryLimit is returned when a configured retry limit is exhausted
	// before valid input was supplied. Engines without a retry limit never
	// return it.
	ErrRetryLimit = errors.New("retry limit exceeded")
)
