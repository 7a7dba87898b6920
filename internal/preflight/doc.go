// Package preflight provides readiness checks for the files and directories
// the curation stages read and write.
//
// The CLI "curator check" command runs RunAll and prints one status line per
// check. Inputs produced by an earlier stage of the same run are not checked,
// since they only exist once that stage has written them.
package preflight
