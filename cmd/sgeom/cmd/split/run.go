/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package split implements the "sgeom split" sub-command. It cuts every
// convex region in a GeoJSON file along one great circle and writes the
// resulting pieces back out as a GeoJSON FeatureCollection.
package split

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/glog"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/singhbaljit/commons-geometry/core"
	"github.com/singhbaljit/commons-geometry/geo"
	"github.com/singhbaljit/commons-geometry/precision"
	"github.com/singhbaljit/commons-geometry/spherical/twod"
	"github.com/singhbaljit/commons-geometry/x"
)

// Split is the sub-command invoked when running "sgeom split".
var Split x.SubCommand

var opt struct {
	geojson string
	pole    string
	out     string
	maxEdge float64
}

func init() {
	Split.Cmd = &cobra.Command{
		Use:   "split",
		Short: "Split convex regions along a great circle",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			defer x.StartProfile(Split.Conf).Stop()
			if err := run(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Split.EnvPrefix = "SGEOM_SPLIT"

	flag := Split.Cmd.Flags()
	flag.StringVar(&opt.geojson, "geojson", "",
		"GeoJSON file holding a FeatureCollection of convex polygons")
	flag.StringVar(&opt.pole, "pole", "",
		`Pole of the splitting great circle as "azimuth,polar" in radians`)
	flag.StringVar(&opt.out, "out", "",
		"File to write the split pieces to. Defaults to stdout.")
	flag.Float64Var(&opt.maxEdge, "max_edge", math.Pi/12,
		"Largest boundary angle covered by a single output polygon edge, in radians")
	x.Check(Split.Cmd.MarkFlagRequired("geojson"))
	x.Check(Split.Cmd.MarkFlagRequired("pole"))
}

func run() error {
	prec := precision.OfEpsilon(Split.GetFloat64P("eps", "epsilon", 1e-10))

	pole, err := parsePole(opt.pole)
	if err != nil {
		return err
	}
	splitter, err := twod.GreatCircleFromPole(pole.Vector(), prec)
	if err != nil {
		return err
	}

	f, err := os.Open(opt.geojson)
	if err != nil {
		return errors.Wrapf(err, "opening %s", opt.geojson)
	}
	defer f.Close()

	features, err := geo.ReadFeatures(f, prec)
	if err != nil {
		return err
	}

	fc := geojson.NewFeatureCollection()
	for _, ft := range features {
		split := ft.Area.Split(splitter)
		glog.V(2).Infof("feature %q split: %v", ft.Name, split.Location)

		switch split.Location {
		case core.SplitBoth:
			if err := addPiece(fc, split.Minus, ft.Name, "minus"); err != nil {
				return err
			}
			if err := addPiece(fc, split.Plus, ft.Name, "plus"); err != nil {
				return err
			}
		case core.SplitMinus:
			if err := addPiece(fc, split.Minus, ft.Name, "minus"); err != nil {
				return err
			}
		case core.SplitPlus:
			if err := addPiece(fc, split.Plus, ft.Name, "plus"); err != nil {
				return err
			}
		}
	}

	var w io.Writer = os.Stdout
	if opt.out != "" {
		out, err := os.Create(opt.out)
		if err != nil {
			return errors.Wrapf(err, "creating %s", opt.out)
		}
		defer out.Close()
		w = out
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding result")
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrapf(err, "writing result")
	}
	return nil
}

// addPiece encodes one split piece as a polygon feature tagged with the name
// of the region it came from and the side of the splitter it lies on.
func addPiece(fc *geojson.FeatureCollection, piece *twod.ConvexArea2S, name, side string) error {
	poly, err := geo.ToGeomPolygon(piece, s1.Angle(opt.maxEdge))
	if err != nil {
		return errors.Wrapf(err, "encoding %s piece of %q", side, name)
	}

	rings := make([][][]float64, poly.NumLinearRings())
	for i := range rings {
		coords := poly.LinearRing(i).Coords()
		ring := make([][]float64, len(coords))
		for j, c := range coords {
			ring[j] = []float64{c.X(), c.Y()}
		}
		rings[i] = ring
	}

	ft := geojson.NewPolygonFeature(rings)
	ft.SetProperty("name", name)
	ft.SetProperty("side", side)
	fc.AddFeature(ft)
	return nil
}

func parsePole(s string) (twod.Point2S, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return twod.Point2S{}, errors.Errorf(`pole must be "azimuth,polar", got %q`, s)
	}
	az, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return twod.Point2S{}, errors.Wrapf(err, "parsing pole azimuth")
	}
	polar, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return twod.Point2S{}, errors.Wrapf(err, "parsing pole polar angle")
	}
	return twod.NewPoint2S(az, polar), nil
}
