/*
Package main implements a small concatenative, stack-based scripting
interpreter that drives a terminal program.

A program is a whitespace-delimited stream of words. Each word either
pushes a value onto one of two stacks (arbitrary-precision integers, or
binary objects with nested references), manipulates a stack, defines a new
word, controls compilation, or performs an effect such as reading a key
event or printing to the terminal.

The dictionary resolves a word name to an executable body; names not found
fall through a chain of literal parsers (string, then char, then numeric).
Definitions are introduced with `:` and closed with `;`; while the compiler
is active, non-immediate words are appended to the definition under
construction instead of being run. `if`/`then`/`else`/`end`/`repeat` form a
small conditional and loop sub-state-machine layered on top of that same
compiling mechanism, including an anonymous, discard-after-use definition
for conditionals written outside of any named word.

Effects (terminal I/O, filesystem reads) are installed into the dictionary
like any other word, under namespaces such as `Sys Terminal` and `Sys Fs`,
so they are indistinguishable from user-defined words once registered.
*/
package main
