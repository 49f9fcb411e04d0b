// Package input reads puzzle input files: pairs of integer columns and rows of
// integer levels. Every failure is returned as an *IOError or a *ParseError
// that names the 1-based line and, where there is one, the offending token.
package input
