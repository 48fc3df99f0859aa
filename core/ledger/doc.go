// Package ledger is the quantity engine behind player inventories and
// the shared party stash.
//
// # Invariants
//
//   - A persisted line always has quantity > 0; any operation that would
//     reduce it to zero or below deletes the row instead.
//   - Lines reference only item keys present in the catalog; adds check
//     the catalog first, and the catalog's delete path calls PurgeItem
//     inside its transaction to cascade.
//   - A remove is a strict precondition, not a clamp: if the line holds
//     less than requested the operation fails with
//     apperr.ErrInsufficientQuantity and changes nothing.
//
// # Concurrency
//
// Each add is an upsert-increment and each remove a conditional
// decrement (UPDATE ... WHERE quantity >= ?) whose affected-row count
// decides success, so two concurrent removes can never both drain the
// same units. No in-process locking is involved.
package ledger
