/*
 * SPDX-License-Identifier: Apache-2.0
 */

package twod

import (
	"github.com/pkg/errors"

	"github.com/singhbaljit/commons-geometry/core"
)

// ErrDegenerateGeometry is core.ErrDegenerateGeometry, re-exported so callers
// of this package can match factory errors without importing core.
var ErrDegenerateGeometry = core.ErrDegenerateGeometry

// ErrInvalidBoundary is returned by region factory functions when the given
// boundary description cannot produce a region. Degenerate geometry
// encountered during construction surfaces as this error, with the underlying
// failure described in the message.
var ErrInvalidBoundary = errors.New("invalid region boundary")
