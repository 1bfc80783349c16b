// Package primer assembles the primer report file.
//
// A primer is a single plain-text file summarizing a project's current
// state: a header, the verbatim working-tree status, a bounded commit
// history, a depth-limited directory tree, and the raw contents of a fixed
// ordered list of key files. Sections are framed by literal delimiter lines;
// downstream consumers parse the file by those delimiters, so their exact
// text is part of the contract.
//
// Generation is sequential and fail-fast: the first failing step aborts the
// run and leaves the partially written file on disk. A listed key file being
// absent is not a failure; it produces a warning marker and generation
// continues.
package primer
