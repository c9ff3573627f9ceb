// Package pypower converts tabular power-network data between external
// numbering (original identifiers and ordering, offline and isolated
// entities included) and internal numbering (densely packed, consecutively
// numbered, online-only entities grouped for numerical solving).
//
// This package implements the restore direction: given a case that a forward
// converter has renumbered internally and equipped with an order record
// (types.Order), Int2Ext puts every table back into original numbering and
// re-populates the rows the internal computation dropped. Int2ExtField and
// Int2ExtValue apply the same reversal to auxiliary data correlated with the
// case's row ordering — generator cost curves, linear constraint matrices,
// nested extension fields — either inside the case or freestanding.
//
// The conversion is lossless and composable: data for offline entities is
// taken from the cached external snapshot, online rows from the internal
// data, and rows beyond those an ordering descriptor names pass through
// untouched.
package pypower
