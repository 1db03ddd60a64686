// Package voxtopo implements a hierarchical sparse voxel topology for
// incremental boolean subtraction of swept tool volumes, as used in CNC
// machining simulation.
//
// The tree has three tiers — root, internal, brick — each with its own
// fanout (N1, N2, N3 bits per axis, default 2/3/4 giving 512 voxels per
// axis). Cells are addressed by Morton (Z-order) codes so a child's key is
// a bit-concatenation of its parent's key and a local index. Children and,
// at the brick tier, individual voxels are stored in popcount-compressed
// sparse arrays: an absent slot costs nothing, and a node starts fully
// dense right after subdividing, shrinking monotonically as Subtract and
// Harvest prune empty subtrees and zeroed words.
//
// Topology is the package's entry point: construct one with New or
// NewConfig, carve it with Subtract, and read out the surviving voxels
// with Harvest.
package voxtopo
