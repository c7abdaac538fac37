// Package aho reconstructs a cograph from a consistent rooted-triple set
// using the classical BUILD algorithm of Aho, Sagiv, Szymanski and Ullman
// ("Inferring a tree from lowest common ancestors...", SIAM J. Comput. 1981),
// specialized to cotrees.
//
// BuildCotree recursively splits the leaf set along the connected components
// of the comparability graph of the triples, alternating Union and Join
// levels starting from Union at the root. A comparability graph that stays
// in one piece means no cograph satisfies every triple; that surfaces as
// ErrInconsistentTriples. The min-cut-split preprocessing in package editing
// exists precisely to prune triple sets until this branch is unreachable.
package aho
