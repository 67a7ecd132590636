// Package textpipe cleans downloaded poetry into analyzable prose.
//
// Book headings are dropped by a two-state toggle keyed on repeated heading
// lines, digits are stripped as a character class, bracketed translator
// comments vanish via a non-greedy match, and archaic elisions such as
// "call’d" become "called". Order matters: the heading toggle needs line
// structure, so Pipeline runs it before newlines are flattened, then records
// the word count after every stage.
//
// Every transform is a pure string function, exported for direct use and
// testing. None of them may increase the whitespace-separated word count;
// Modernize must preserve it exactly.
package textpipe
