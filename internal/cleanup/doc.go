// Package cleanup enforces the dataset hygiene rule and orders rows by how
// informative they are.
//
// Rows labeled real (fake == 0) keep only their filename and label; every
// other cell is blanked. Rows are then stably ordered: fakes whose match
// column carries text, then the remaining fakes, then reals.
package cleanup
