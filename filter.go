package nbudata

// FilterByKey restricts records to those whose key belongs to ids, keeping
// the original relative order. An empty or nil ids list is an identity
// pass-through. Ids that match no record are silently ignored: the filter is
// an allow-list intersection, not a validation step.
func FilterByKey[T any](records []T, ids []string, key func(T) string) []T {
	if len(ids) == 0 {
		return records
	}
	allowed := make(map[string]bool, len(ids))
	for _, id := range ids {
		allowed[id] = true
	}
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if allowed[key(r)] {
			kept = append(kept, r)
		}
	}
	return kept
}

// FilterBonds restricts bonds to the given ISINs.
func FilterBonds(bonds []BondRecord, isins []string) []BondRecord {
	return FilterByKey(bonds, isins, func(b BondRecord) string { return b.ISIN })
}
