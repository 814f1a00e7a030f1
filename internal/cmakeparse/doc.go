// Package cmakeparse converts CMake build-description text into a structured,
// queryable Record that the astgen package turns into a typed node tree.
//
// The front-end is deliberately a best-effort, pattern-matching extractor
// rather than a grammar-driven parser: every construct it does not recognize
// is simply absent from the Record, never an error. Parsing happens in a fixed
// sequence of passes over the source text: conditional-block filtering,
// variable extraction and resolution, multi-line command normalization, and
// then one extraction pass per command kind. All mutable parse state lives in
// a per-call value, so a Record is a pure function of its input text.
package cmakeparse
