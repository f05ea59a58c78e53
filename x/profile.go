/*
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/viper"
)

type stopper interface {
	Stop()
}

type noOpStopper struct{}

func (noOpStopper) Stop() {}

// StartProfile starts profiling as requested by the profile_mode option and
// returns a handle whose Stop method flushes the profile. With an empty mode
// it is a no-op, so callers can defer unconditionally:
//
//	defer x.StartProfile(conf).Stop()
func StartProfile(conf *viper.Viper) stopper {
	switch mode := conf.GetString("profile_mode"); mode {
	case "cpu":
		return profile.Start(profile.CPUProfile)
	case "mem":
		return profile.Start(profile.MemProfile)
	case "mutex":
		return profile.Start(profile.MutexProfile)
	case "block":
		runtime.SetBlockProfileRate(conf.GetInt("block_rate"))
		return profile.Start(profile.BlockProfile)
	case "":
		return noOpStopper{}
	default:
		fmt.Printf("Invalid profile mode: %q\n", mode)
		os.Exit(1)
		return noOpStopper{}
	}
}
