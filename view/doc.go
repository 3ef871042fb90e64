// Package view tracks the overview/detail mode and the user controls that
// scope every derivation pass.
package view
