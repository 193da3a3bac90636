/*
Package jieba implements a Chinese word segmentation engine.

Given a Unicode string of mixed Chinese, Latin, and digit content, a
Cutter partitions it into a sequence of tokens that correspond to
dictionary words, names, or language-appropriate atoms (single
characters, numbers, Latin runs). Segmentation combines a prefix-index
dictionary lookup, a directed-acyclic-graph of candidate word spans, a
dynamic-programming maximum-probability route over that graph, and a
Hidden Markov Model (HMM) that recovers out-of-vocabulary words via
BMES tagging and Viterbi decoding.

Three public cutting modes are provided: Cut (accurate, dictionary +
HMM), CutAll (coarse, every dictionary match), and CutForSearch
(accurate plus sub-word fragments, tuned for search indexing).
*/
package jieba
