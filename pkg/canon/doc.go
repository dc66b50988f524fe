// Package canon holds the canonical book metadata used to validate scripture
// references: the 66-book Protestant canon with per-chapter verse counts
// (KJV numbering). It knows nothing about cipher tables; pkg/cipher treats
// references as opaque strings and callers opt in to canonical validation.
package canon
