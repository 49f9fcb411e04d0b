// Package settings loads the optional HCL settings file that tunes the
// solvers. Without a file every solver runs with Default().
//
// A settings file looks like:
//
//	classifier {
//	  tolerance = 1
//	  min_step  = 1
//	  max_step  = defaults.max_step
//	}
//	workers = 4
//
// Expressions are evaluated with a `defaults` object holding the built-in
// values, so a file can express its settings relative to them.
package settings
