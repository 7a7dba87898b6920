// Package organizer copies labeled images into real/ and fake/ folders.
//
// Rows are processed in file order. Missing source images and per-file copy
// errors are counted and reported but never abort the run; only a missing
// CSV or image directory, or an unreadable table, stops the stage before any
// copy happens. Copies are not transactional: whatever was copied before a
// failure or cancellation stays in place.
//
// When renaming is enabled the copied file name embeds the label, generator,
// and active artifact flags of the row.
package organizer
