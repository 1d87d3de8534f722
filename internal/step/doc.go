// Package step defines the replayable snapshot records produced by the
// algorithm generators and consumed by the playback controller.
//
// Every record carries a [Base] (full array snapshot, action text, kind tag
// and highlighted indices) and one family-specific payload:
//
//   - [SortStep]: sorted set, pivot/minimum/key index, shell sort gap
//   - [LinearSearchStep]: cursor, found flag, target
//   - [BinarySearchStep]: low/high/mid window, found flag, target
//   - [TreeStep]: visited node value for binary search tree operations
//
// A [Sequence] is the complete ordered output of one generator run. Records
// are immutable once appended; generators allocate a fresh array slice for
// every snapshot.
//
// # Wire Format
//
// Sequences marshal to the canonical JSON step shape shared with the remote
// tree service, see [Wire].
package step
