// Package report compares a source temperament against one or more
// reference temperaments and renders the result.
//
// Build is a read-only projection: for every non-zero degree of the
// source it records the nearest degree of each reference together with
// the raw ratio difference and the difference in cents. The unrounded
// values are kept on the report; RoundRatio and RoundCents produce the
// display values (5 decimal places, whole cents rounded half away from
// zero).
//
// RenderText writes the wide one-column-per-degree table, RenderJSON and
// RenderYAML write the full report. ParseText reads the text form back
// into a Table so a rendered report can be checked against Report.Table.
package report
