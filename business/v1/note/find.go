package note

import "context"

func (s *Service) Find(ctx context.Context, id string) (Note, error) {
	found, err := s.store.Get(ctx, id)
	return s.result("find", id, found, err)
}
