// Package paf decodes PAF (Pairwise mApping Format) alignment lines and
// locus fragments, and reports failures as positioned diagnostics.
//
// - One grammar, two inputs: every entry point has a string and a []byte
//   form that decode identically (ParseRecord/ParseRecordBytes,
//   ParseLocus/ParseLocusBytes).
// - Diagnostics: failures are *ParseError (line, caret column, labels) or
//   *EmptyInputError values whose Error() output is ready to print. Tabs are
//   expanded to TabWidth columns so the caret lines up.
// - Line context: pass ParseOpt{Line: n} when parsing line n of a larger
//   document to get numbered diagnostics.
// - Encoding: Record and Locus render back to PAF text with String and
//   marshal to JSON (goccy/go-json) and YAML (yaml.v3) objects.
//
// Design policy:
// - Keep only public APIs in the root package; the combinator engine lives in
//   internal/grammar.
// - Parsing is a pure function of its input and safe for concurrent use.
// - No semantic checks across columns (start <= end <= length is not
//   enforced).
//
// Typical usage:
//
//	rec, err := paf.ParseRecord(line, paf.ParseOpt{Line: n})
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err)
//	}
//	fmt.Println(rec.Query.Name, rec.Strand, rec.Target.Name)
package paf
