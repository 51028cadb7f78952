package note

import "context"

// CheckAvailability tells whether candidate would be used as is by Create, it reserves nothing
func (s *Service) CheckAvailability(ctx context.Context, candidate string) Availability {
	av := s.alloc.CheckAvailability(candidate, s.exists(ctx))
	return Availability{
		Extension: av.Normalized,
		Legal:     av.Legal,
		Available: av.Available,
	}
}
