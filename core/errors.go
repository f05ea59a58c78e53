/*
 * SPDX-License-Identifier: Apache-2.0
 */

package core

import "github.com/pkg/errors"

// ErrDegenerateGeometry is returned by geometric factory functions when their
// inputs collapse to something without the required dimension, e.g. a circle
// pole with zero norm, equal or antipodal defining points, or an angular
// interval too large to stay convex. Callers test for it with errors.Is.
var ErrDegenerateGeometry = errors.New("degenerate geometry")
