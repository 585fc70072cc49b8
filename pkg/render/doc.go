// Package render turns extracted dependency trees into visual outputs.
//
// # Overview
//
// The pipeline is DOT-centric: [ToDOT] converts a tree model into Graphviz
// DOT source, [RenderSVG] rasterizes it in process, and [ToPDF]/[ToPNG]
// convert the SVG using the external rsvg-convert tool (from librsvg).
//
//	dot := render.ToDOT(m, render.Options{})
//	svg, err := render.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Diagram shape
//
// Each configuration becomes its own cluster; every occurrence of a
// dependency becomes its own node, so shared (diamond) subtrees appear once
// per path exactly as they do in the serialized model. Nodes carrying an
// error are outlined in red, workspace projects are filled distinctly.
package render
