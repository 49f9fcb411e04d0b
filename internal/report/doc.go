// Package report classifies reports, ordered sequences of integer levels,
// as safe or unsafe.
//
// A report is strictly safe when every adjacent step moves in the same
// direction and each step magnitude lies inside a StepRule (by default
// [1, 3]). A Tolerance relaxes the check: a report is safe with tolerance t
// when deleting at most t levels leaves a strictly safe report. The check is
// exhaustive, trying every deletion, which is cheap for reports of a few
// dozen levels.
//
// Classification is a pure function of a single report, so counting safe
// reports can be spread over a bounded number of goroutines without any
// shared state (see Classifier.CountSafe).
package report
