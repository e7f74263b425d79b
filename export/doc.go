// Package export renders a design and its evaluation results into
// downloadable artifacts: a JSON report and a Markdown design document with
// an ASCII zone diagram.
//
// The exporters only format; every judgment they print comes from the
// assess package.
package export
