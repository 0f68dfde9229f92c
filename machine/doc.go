// Package machine implements the lexer and execution engine for the
// eight instruction tape language.
//
// The Parser turns source text into a Program: a flat sequence of
// Instructions whose loop brackets carry the index of their partner.
// The Machine owns the tape memory and data pointer, and exposes a
// single Step operation that both the headless interpreter and the
// interactive debugger drive. The instruction pointer belongs to the
// caller, which advances it by one after every Step.
package machine
