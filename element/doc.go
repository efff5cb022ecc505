// Package element implements the indexed element tree behind HL7v2-style
// delimited messages.
//
// A message is a six-level hierarchy: message → segment → field → repetition
// → component → subcomponent. Every level shares one generic engine: a sparse
// store of lazily materialized children addressed by a zero-based position,
// serialized by walking populated positions in ascending order and padding
// gaps with the level's delimiter. Reading a value composes bottom-up;
// writing a composite value splits top-down and rebuilds the child set.
//
// The segment level specializes the engine for the header segment (type
// "MSH"): field 0 carries the type code, and while the type is the header
// code, field 1 is a live view of the field delimiter character and field 2 a
// live view of the remaining encoding characters. Both views resolve against
// the current field-0 text at access time, never from a cached role.
//
// Trees are not safe for concurrent use; re-indexing rewrites entire sibling
// sets, so callers needing shared access must serialize it externally.
package element
