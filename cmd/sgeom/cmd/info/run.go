/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package info implements the "sgeom info" sub-command. It summarizes the
// convex regions found in a GeoJSON file and optionally counts how many
// points of a sample fall inside each of them.
package info

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/singhbaljit/commons-geometry/geo"
	"github.com/singhbaljit/commons-geometry/precision"
	"github.com/singhbaljit/commons-geometry/spherical/twod"
	"github.com/singhbaljit/commons-geometry/x"
)

// Info is the sub-command invoked when running "sgeom info".
var Info x.SubCommand

var opt struct {
	geojson string
	points  string
}

func init() {
	Info.Cmd = &cobra.Command{
		Use:   "info",
		Short: "Summarize convex regions read from GeoJSON",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			defer x.StartProfile(Info.Conf).Stop()
			if err := run(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Info.EnvPrefix = "SGEOM_INFO"

	flag := Info.Cmd.Flags()
	flag.StringVar(&opt.geojson, "geojson", "",
		"GeoJSON file holding a FeatureCollection of convex polygons")
	flag.StringVar(&opt.points, "points", "",
		"Optional CSV file of azimuth,polar pairs in radians to classify against each region")
	x.Check(Info.Cmd.MarkFlagRequired("geojson"))
}

func run() error {
	prec := precision.OfEpsilon(Info.GetFloat64P("eps", "epsilon", 1e-10))

	f, err := os.Open(opt.geojson)
	if err != nil {
		return errors.Wrapf(err, "opening %s", opt.geojson)
	}
	defer f.Close()

	features, err := geo.ReadFeatures(f, prec)
	if err != nil {
		return err
	}

	var pts []twod.Point2S
	if opt.points != "" {
		if pts, err = readPoints(opt.points); err != nil {
			return err
		}
	}

	for _, ft := range features {
		name := ft.Name
		if name == "" {
			name = "<unnamed>"
		}
		fmt.Printf("%s\n", name)
		fmt.Printf("  size:     %.6f sr (%s)\n", ft.Area.Size(), geo.EarthArea(ft.Area))
		fmt.Printf("  boundary: %.6f rad (%s)\n", ft.Area.BoundarySize(),
			geo.EarthBoundaryLength(ft.Area))
		if c, ok := ft.Area.Centroid(); ok {
			lon, lat := geo.DegreesOf(c)
			fmt.Printf("  centroid: lon %.4f, lat %.4f\n", lon, lat)
		}
		if len(pts) > 0 {
			inside := geo.NewBatchClassifier(ft.Area).CountInside(pts)
			fmt.Printf("  points inside: %s of %s\n",
				humanize.Comma(int64(inside)), humanize.Comma(int64(len(pts))))
		}
	}
	return nil
}

// readPoints parses a CSV file with one azimuth,polar pair per line, both in
// radians.
func readPoints(path string) ([]twod.Point2S, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	pts := make([]twod.Point2S, 0, len(records))
	for i, rec := range records {
		if len(rec) != 2 {
			return nil, errors.Errorf("%s line %d: want azimuth,polar, got %d fields",
				path, i+1, len(rec))
		}
		az, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d", path, i+1)
		}
		polar, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d", path, i+1)
		}
		pts = append(pts, twod.NewPoint2S(az, polar))
	}
	return pts, nil
}
