package tuple

type stored interface{ store() storage }

// equalStorage is the structural comparator: slot 0 first, then the rest,
// stopping at the first mismatch. Two empty remainders are equal.
func equalStorage(a, b storage) bool {
	if a == b {
		return true
	}
	if a.size() != b.size() {
		return false
	}
	return equalFrom(a, b, 0)
}

func equalFrom(a, b storage, i int) bool {
	if i == a.size() {
		return true
	}
	da, db := a.descriptorAt(i), b.descriptorAt(i)
	if !da.Comparable(db) || !da.Equal(a.at(i), b.at(i)) {
		return false
	}
	return equalFrom(a, b, i+1)
}

// equalAny backs EqualAny on tuples and messages: any other tuple or message
// of the same arity compares structurally, everything else is unequal.
func equalAny(a storage, o any) bool {
	other, ok := o.(stored)
	if !ok {
		return false
	}
	b := other.store()
	if b == nil {
		return false
	}
	return equalStorage(a, b)
}
