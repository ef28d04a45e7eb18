/*
 * main.go, part of gobasis.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// gobasis evaluates Gaussian basis functions from the command line. It can
// serve JSON evaluation requests through standard input and output, or plot
// basis functions and their derivatives along a line for a molecule read
// from an XYZ file.
package main

import (
	"fmt"
	"io"
	"log"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/basisfile"
	"github.com/rmera/gobasis/basisjson"
	"github.com/rmera/gobasis/basisplot"
	"github.com/rmera/gobasis/evalderiv"
	"github.com/spf13/cobra"
)

var (
	basisName   string
	basisFormat string
	from, to    []float64
	npoints     int
	orders      []int
	rows        []int
	cartesian   bool
	normalize   bool
	cpus        int
	title       string
)

var (
	rootCmd = &cobra.Command{
		Use:           "gobasis",
		Short:         "Evaluates Gaussian basis functions and their derivatives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	jsonCmd = &cobra.Command{
		Use:   "json",
		Short: "Evaluates a JSON request read from standard input",
		Long:  `Reads a JSON evaluation request (options, shells, points and, optionally, a transformation matrix) from standard input and writes the result, or a JSON error, to standard output.`,
		Args:  cobra.NoArgs,
		RunE:  runJSON,
	}
	profileCmd = &cobra.Command{
		Use:   "profile [xyz-file] [plot-name]",
		Short: "Plots basis functions of a molecule along a line",
		Long:  `Builds the basis set given with --basis for the molecule in the XYZ file (in Angstrom), evaluates the requested functions, or their derivatives, at points along a line (in bohr) and saves the plot. The format of the plot is given by the extension of the plot name.`,
		Args:  cobra.ExactArgs(2),
		RunE:  runProfile,
	}
)

func init() {
	rootCmd.AddCommand(jsonCmd)
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&basisName, "basis", "b", "", "Basis set file (NWChem or Gaussian94, optionally .gz or .zst compressed)")
	profileCmd.Flags().StringVar(&basisFormat, "format", "", "Format of the basis set file (nwchem or gbs). Deduced from the extension if not given")
	profileCmd.Flags().Float64SliceVar(&from, "from", []float64{-3, 0, 0}, "Start of the line, in bohr")
	profileCmd.Flags().Float64SliceVar(&to, "to", []float64{3, 0, 0}, "End of the line, in bohr")
	profileCmd.Flags().IntVarP(&npoints, "points", "n", 200, "Number of points along the line")
	profileCmd.Flags().IntSliceVar(&orders, "deriv", []int{0, 0, 0}, "Orders of the derivatives along x, y and z")
	profileCmd.Flags().IntSliceVar(&rows, "functions", []int{0}, "Indexes of the basis functions to plot")
	profileCmd.Flags().BoolVar(&cartesian, "cartesian", false, "Use Cartesian instead of spherical functions")
	profileCmd.Flags().BoolVar(&normalize, "normalize", false, "Normalize the contractions")
	profileCmd.Flags().IntVar(&cpus, "cpus", 0, "Number of goroutines to use, 0 for all logical CPUs")
	profileCmd.Flags().StringVarP(&title, "title", "t", "", "Title of the plot")
	profileCmd.MarkFlagRequired("basis")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("gobasis: %v", err)
	}
}

func runJSON(cmd *cobra.Command, args []string) error {
	return serveJSON(cmd.InOrStdin(), cmd.OutOrStdout())
}

// serveJSON answers one request. Errors are also sent to out, so the calling program
// gets them.
func serveJSON(in io.Reader, out io.Writer) error {
	req, jerr := basisjson.DecodeRequest(in)
	if jerr == nil {
		var res *basisjson.Result
		res, jerr = basisjson.Run(req)
		if jerr == nil {
			jerr = res.Send(out)
		}
	}
	if jerr != nil {
		fmt.Fprintln(out, string(jerr.Marshal()))
		return jerr
	}
	return nil
}

func vec3(name string, v []float64) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, fmt.Errorf("--%s needs 3 coordinates, got %d", name, len(v))
	}
	return [3]float64{v[0], v[1], v[2]}, nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	f, err := vec3("from", from)
	if err != nil {
		return err
	}
	t, err := vec3("to", to)
	if err != nil {
		return err
	}
	set, err := basisfile.Read(basisName, basisFormat)
	if err != nil {
		return err
	}
	top, coords, err := basis.XYZRead(args[0])
	if err != nil {
		return err
	}
	coords.Scale(basis.A2Bohr, coords)
	shells, err := basisfile.MakeContractions(set, top, coords)
	if err != nil {
		return err
	}
	O := evalderiv.DefaultOptions()
	if cartesian {
		O.CoordTypes(basis.Cartesian)
	}
	O.Normalize(normalize)
	O.Cpus(cpus)
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = fmt.Sprintf("%d", r)
	}
	if title == "" {
		title = fmt.Sprintf("%s, derivative %v", args[0], orders)
	}
	return basisplot.LineProfile(shells, f, t, npoints, orders, O, rows, labels, title, args[1])
}
