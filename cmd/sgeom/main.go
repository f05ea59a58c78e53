/*
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"github.com/singhbaljit/commons-geometry/cmd/sgeom/cmd"
)

func main() {
	cmd.Execute()
}
