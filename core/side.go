/*
 * SPDX-License-Identifier: Apache-2.0
 */

package core

// Side identifies which side of an oriented hyperplane a point lies on. The
// numeric values match the sign of the point's offset from the hyperplane.
type Side int8

const (
	SideMinus Side = -1
	SideOn    Side = 0
	SidePlus  Side = 1
)

func (s Side) String() string {
	switch s {
	case SideMinus:
		return "MINUS"
	case SideOn:
		return "ON"
	case SidePlus:
		return "PLUS"
	}
	return "UNKNOWN"
}
