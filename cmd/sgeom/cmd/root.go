/*
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/singhbaljit/commons-geometry/cmd/sgeom/cmd/info"
	"github.com/singhbaljit/commons-geometry/cmd/sgeom/cmd/split"
	"github.com/singhbaljit/commons-geometry/x"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "sgeom",
	Short: "sgeom: convex regions on the unit sphere",
	Long: `
sgeom works with convex regions on the unit sphere. Regions are read from
GeoJSON polygons whose edges are interpreted as great-circle arcs. They can
be measured, have point sets classified against them, and be split along
arbitrary great circles.
`,
	PersistentPreRunE: cobra.NoArgs,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once.
func Execute() {
	goflag.Parse()
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var rootConf = viper.New()

func init() {
	RootCmd.PersistentFlags().Float64("eps", 1e-10,
		"Tolerance used when comparing azimuths, offsets and interval sizes.")
	RootCmd.PersistentFlags().String("profile_mode", "",
		"Enable profiling mode, one of [cpu, mem, mutex, block]")
	RootCmd.PersistentFlags().Int("block_rate", 0,
		"Block profiling rate. Must be used along with block profile_mode")
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	rootConf.BindPFlags(RootCmd.PersistentFlags())

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	// Always set stderrthreshold=0. Don't let users set it themselves.
	x.Check(flag.Set("stderrthreshold", "0"))
	x.Check(flag.CommandLine.MarkDeprecated("stderrthreshold",
		"sgeom always sets this flag to 0. It can't be overwritten."))

	bindAll(&info.Info, &split.Split)
}

func bindAll(subcommands ...*x.SubCommand) {
	for _, sc := range subcommands {
		sc := sc // capture per-iteration for the OnInitialize closure under go <1.22 loop semantics
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		sc.Conf.BindPFlags(sc.Cmd.Flags())
		sc.Conf.BindPFlags(RootCmd.PersistentFlags())
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
		cobra.OnInitialize(func() {
			cfg := rootConf.GetString("config")
			if cfg == "" {
				return
			}
			sc.Conf.SetConfigFile(cfg)
			x.Check(x.Wrapf(sc.Conf.ReadInConfig(), "reading config"))
		})
	}
}
