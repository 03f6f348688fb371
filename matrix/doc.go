// Package matrix implements dense matrices over GF(2) packed one bit per
// cell into 64-bit words, plus the structural operations that keep those
// matrices coherent: windows, row/column permutations, row combination,
// transposition, and the binary file format used to persist them.
//
// The hard numerical kernels (multiplication, elimination, triangular
// solve, echelon factorization, and the algorithms derived from them) live
// in the ops subpackage; this package owns the storage layout every kernel
// operates on.
package matrix
