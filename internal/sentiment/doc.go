// Package sentiment scores text against the VADER lexicon.
//
// VADER is a rule-based model tuned for valence in English text; its four
// figures (negative, neutral, positive, compound) are proportions plus a
// normalized sum. The lexicon ships compiled into the library, so the
// analyzer works offline and construction cannot fail.
package sentiment
