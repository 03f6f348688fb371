// Package ops implements the GF(2) dense linear-algebra kernels: naive,
// M4RM and Strassen--Winograd multiplication, triangular solve (TRSM),
// PLE/PLUQ factorization, and the algorithms derived from it (echelon
// form, rank, null space, inversion, solve).
package ops
