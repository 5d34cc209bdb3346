package validation

import "context"

// ReferenceStore is the capability the resolver needs from a store accessor:
// identifier syntax validation and one batched existence count. A storage
// engine may implement CountByIDs as a batch query, a bitmap check, or an
// in-memory index without the pipeline caring.
type ReferenceStore interface {
	IsValidID(id string) bool
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}

// RefReason distinguishes a syntactically bad identifier from a well-formed
// one that resolves to nothing. The two map to different HTTP statuses.
type RefReason string

const (
	RefMalformed RefReason = "MALFORMED"
	RefNotFound  RefReason = "NOT_FOUND"
)

// RefResult is the outcome of resolving one batch of references.
type RefResult struct {
	OK      bool
	Reason  RefReason
	Missing int // dangling reference count when Reason is RefNotFound
}

// ResolveReferences deduplicates ids, rejects the whole batch if any
// identifier is malformed, and otherwise confirms existence with a single
// count query. One query instead of N round trips keeps the window for
// interleaved deletes as small as the store allows; it does not eliminate it.
func ResolveReferences(ctx context.Context, ids []string, store ReferenceStore) (RefResult, error) {
	distinct := dedupe(ids)
	for _, id := range distinct {
		if !store.IsValidID(id) {
			return RefResult{Reason: RefMalformed}, nil
		}
	}
	if len(distinct) == 0 {
		return RefResult{OK: true}, nil
	}
	count, err := store.CountByIDs(ctx, distinct)
	if err != nil {
		return RefResult{}, err
	}
	if int(count) != len(distinct) {
		return RefResult{Reason: RefNotFound, Missing: len(distinct) - int(count)}, nil
	}
	return RefResult{OK: true}, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}
