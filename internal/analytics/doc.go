// Package analytics derives project status, difficulty, team load and
// dashboard statistics from project records.
//
// Every function here is pure: it reads the records it is given plus an
// explicit today value and never performs I/O. Aggregates rescan the whole
// collection on each call and recompute statuses with the same today value,
// so a result is always an internally consistent snapshot of its input.
package analytics
