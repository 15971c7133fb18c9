// Package scanner discovers sidecar files under a project's asset folder and
// reads the identifier each one carries.
//
// The scan result feeds the dump command, which writes it back out as a
// mapping file. Sidecars whose asset no longer exists, and sidecars without
// an identifier line, are reported separately instead of being dumped.
package scanner
