// Package wordladder finds word ladders: the shortest sequence of
// dictionary words leading from one word to another, each step changing
// exactly one letter.
//
// What is wordladder?
//
//	A small, dependency-light engine plus the hosts around it:
//		• lexicon — immutable, case-normalized dictionary; neighbor
//		  enumeration by alphabet scan or wildcard index; connected components
//		• ladder  — bidirectional BFS (strict-shortest or first-found),
//		  a single-source BFS reference, and the Solver facade
//		• cmd/wordladder — solve, batch, serve and stats commands
//
// Quick example:
//
//	cat → cot → cog → dog
//
// Every step is one substitution and every word is in the dictionary.
// Words of different lengths are never connected.
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
package wordladder
