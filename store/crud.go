package store

// The generic executor behind every dashboard mutation. Each operation
// talks to the backend first and reconciles local state only after the
// call succeeds, using exactly one strategy per call site: when a refresh
// function is given the whole collection is re-fetched and the server
// response is not patched in locally; otherwise the returned record is
// applied optimistically (append, replace by id, remove by id).

// Create posts a new record and reconciles the collection
func Create[T any](s *Store, list func(*Collections) *[]T, call func() (T, error), refresh func() ([]T, error)) error {
	created, err := call()
	if err != nil {
		return err
	}
	if refresh != nil {
		return refetch(s, list, refresh)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := list(&s.data)
	*slot = append(*slot, created)
	return nil
}

// Update replaces the record with the matching id
func Update[T any](s *Store, list func(*Collections) *[]T, id uint, idOf func(T) uint, call func() (T, error), refresh func() ([]T, error)) error {
	updated, err := call()
	if err != nil {
		return err
	}
	if refresh != nil {
		return refetch(s, list, refresh)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := list(&s.data)
	for i, item := range *slot {
		if idOf(item) == id {
			(*slot)[i] = updated
		}
	}
	return nil
}

// Delete removes the record with the matching id
func Delete[T any](s *Store, list func(*Collections) *[]T, id uint, idOf func(T) uint, call func() error, refresh func() ([]T, error)) error {
	if err := call(); err != nil {
		return err
	}
	if refresh != nil {
		return refetch(s, list, refresh)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := list(&s.data)
	kept := (*slot)[:0]
	for _, item := range *slot {
		if idOf(item) != id {
			kept = append(kept, item)
		}
	}
	*slot = kept
	return nil
}

// refetch swaps in the server's current collection. A failed refresh
// after a successful mutation keeps the stale list rather than guessing;
// the next full fetch repairs it.
func refetch[T any](s *Store, list func(*Collections) *[]T, refresh func() ([]T, error)) error {
	items, err := refresh()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	*list(&s.data) = orEmpty(items, nil)
	return nil
}
