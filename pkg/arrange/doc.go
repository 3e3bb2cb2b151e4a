// Package arrange counts the ways to lay out a multiset of coloured units in
// a row so that no colour appears twice in a row, modulo 1,000,000,007.
//
// Colours are grouped into five slots by how many units they still have:
// slot a holds colours with one unit left, slot b two units, up to slot e
// with five. Using a unit moves its colour one slot down. The counter walks
// this state space top-down and memoizes every (a, b, c, d, e, last) cell in
// a table it owns.
package arrange
