// Package anf converts boolean function truth tables to their
// Algebraic Normal Form, the XOR of AND-monomials over the input
// variables, using the fast Möbius transform over GF(2).
//
// The transform comes in an element-wise flavor for []bool tables and
// in word-parallel flavors for tables packed into unsigned integers,
// where every butterfly stage collapses to a single masked shift-XOR.
// All flavors compute the same bits and all are self-inverse: the same
// call converts ANF coefficients back into a truth table.
package anf
