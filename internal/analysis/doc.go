// Package analysis orchestrates the end-to-end sentiment run.
//
// The Runner wires the download client, the cleaning pipeline, the stopword
// catalog, and the lexicon analyzer into one linear pass: fetch, slice the
// body, clean, filter stopwords, score. There are no retries and no partial
// results; the first failing phase terminates the run with a classified
// error. Every run carries a UUID so its log lines correlate.
package analysis
