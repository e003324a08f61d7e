package report

import (
	"lspenum/internal/model"
)

// Generate writes the complete log for records to s, in the order given.
func Generate(s *Sink, records []model.ProviderRecord, lookup Lookup) error {
	if err := s.WriteBanner(BannerOpen); err != nil {
		return err
	}

	f := NewFormatter(lookup)
	for i, rec := range records {
		if err := s.WriteBlock(f.Entry(i, rec)); err != nil {
			return err
		}
	}

	return s.WriteBanner(BannerClose)
}
