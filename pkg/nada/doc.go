// Package nada provides a process-wide absorbing "nothing" singleton for
// propagating failure down a happy path. Unlike a sentinel, Nada is not
// named: there is one Nada, it is falsy and empty, it absorbs calls and
// transformations by returning itself, and it never compares equal to
// anything, including itself. Identity is tested with pointer comparison
// against Value().
package nada
