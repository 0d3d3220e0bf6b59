// Package comugi provides a Japanese morphological analyzer: given a
// sentence, it segments the text into tokens and assigns each token a
// dictionary entry (surface form plus part-of-speech features), via
// lattice construction and minimum-cost path search ("Viterbi") over a
// dictionary-defined word graph backed by a double-array trie.
//
// comugi does not parse dictionary source files itself (CSV vocabulary
// entries, the cost matrix, or char.def category tables); it consumes
// already-loaded artifacts (see internal/vocab, internal/costmatrix,
// internal/chardef, internal/dat) and focuses on segmentation.
//
// Basic usage:
//
//	c, err := comugi.New(da, vocabStore, surfaceIndex, costMatrix, charDef, comugi.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tokens, err := c.Tokenize("すもももももももものうち", 1)
package comugi
