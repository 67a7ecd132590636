// Package stopwords filters common English words out of analyzed text.
//
// The embedded word list matches the standard English stopword inventory used
// by NLTK and friends. Filtering is token-naive: text is split on whitespace
// and a token is dropped only when its lowercased form is an exact member of
// the set, so "the" disappears while "the," survives with its punctuation.
//
// Catalog adds on-demand list management: an explicit file wins, otherwise a
// configured remote list is downloaded once into the cache directory, and
// the embedded list is the fallback when neither exists.
package stopwords
