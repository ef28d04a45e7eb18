/*
 * profile.go, part of gobasis.
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

// Package basisplot produces plots of basis functions, their derivatives or
// linear combinations of them (such as molecular orbitals) along straight lines.
package basisplot

import (
	"fmt"
	"path/filepath"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/evalderiv"
	v3 "github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func basicProfilePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Distance (bohr)"
	p.Y.Label.Text = "Value"
	p.Add(plotter.NewGrid())
	return p
}

/*Profile plots the rows given in rows of values (one row per function, one
  column per point in path) against the distance of each point in path to the
  first one. labels, if not nil, must have one label per plotted row. If rows is
  nil, all rows are plotted. The format is given by the extension of plotname
  (png, svg, pdf or eps), png is used if there is no extension. Returns an error or nil*/
func Profile(values mat.Matrix, path *v3.Matrix, rows []int, labels []string, title, plotname string) error {
	if values == nil || path == nil {
		return basis.NewError(basis.TypeError, "nil values or path", "Profile")
	}
	if err := v3.Check(path); err != nil {
		return basis.NewError(basis.TypeError, err.Error(), "Profile")
	}
	npoints := path.NVecs()
	if npoints < 2 {
		return basis.NewError(basis.ValueError, "at least 2 points are needed for a profile", "Profile")
	}
	nrows, ncols := values.Dims()
	if ncols != npoints {
		return basis.NewError(basis.TypeError, fmt.Sprintf("%d columns in values for %d points", ncols, npoints), "Profile")
	}
	if rows == nil {
		rows = make([]int, nrows)
		for i := range rows {
			rows[i] = i
		}
	}
	if labels != nil && len(labels) != len(rows) {
		return basis.NewError(basis.TypeError, fmt.Sprintf("%d labels for %d rows", len(labels), len(rows)), "Profile")
	}
	dist := path.Distances(path.Vec(0))
	p := basicProfilePlot(title)
	for key, r := range rows {
		if r < 0 || r >= nrows {
			return basis.NewError(basis.ValueError, fmt.Sprintf("row %d out of range (%d rows)", r, nrows), "Profile")
		}
		xys := make(plotter.XYs, npoints)
		for i := range xys {
			xys[i].X = dist[i]
			xys[i].Y = values.At(r, i)
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return basis.NewError(basis.ValueError, err.Error(), "plotter.NewLine", "Profile")
		}
		l.LineStyle.Color = plotutil.Color(key)
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		if labels != nil {
			p.Legend.Add(labels[key], l)
		}
	}
	filename := plotname
	if filepath.Ext(plotname) == "" {
		filename = fmt.Sprintf("%s.png", plotname)
	}
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return basis.NewError(basis.TypeError, err.Error(), "plot.Save", "Profile")
	}
	return nil
}

// LineProfile evaluates the functions given by shells and O (see evalderiv.EvaluateDerivBasis)
// at npoints equally spaced points going from "from" to "to", and plots the rows in rows
// with Profile.
func LineProfile(shells []*basis.Shell, from, to [3]float64, npoints int, orders []int, O *evalderiv.Options, rows []int, labels []string, title, plotname string) error {
	path := v3.Line(from, to, npoints)
	values, err := evalderiv.EvaluateDerivBasis(shells, path, orders, O)
	if err != nil {
		return basis.ErrDecorate(err, "LineProfile")
	}
	if err := Profile(values, path, rows, labels, title, plotname); err != nil {
		return basis.ErrDecorate(err, "LineProfile")
	}
	return nil
}
