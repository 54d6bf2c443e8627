// Package plot renders recorded titration sweeps as curve images.
//
// Rendering is a pure function of the sweep record: the same record
// always produces the same curve. The output format is chosen by the
// file extension (.png, .svg, .pdf), matching what gonum/plot's Save
// supports. Equivalence points are drawn as dashed vertical markers so
// the steep regions of the curve are easy to locate at a glance.
package plot
