package chardef

import "errors"

// ErrNoCategory reports that the dictionary's char.def tables have no
// entry even for the fallback category character, a malformed-artifact
// condition (spec.md §7's DictionaryMiss) rather than a per-lookup miss.
var ErrNoCategory = errors.New("chardef: no category for fallback character, tables are malformed")
