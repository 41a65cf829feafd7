/*
Package fixedmap provides a fixed-capacity, open-addressing hash table used
as a multimap from string keys to ordered lists of string values.

The table never resizes: its capacity is set at construction and is immutable
for its lifetime. Collisions are resolved by linear probing in the decreasing
index direction with wraparound, so for a given capacity every key lands in a
reproducible slot and every lookup walks a reproducible probe sequence. That
reproducibility is the point of the package; callers that need a
general-purpose map should use one.
*/
package fixedmap
