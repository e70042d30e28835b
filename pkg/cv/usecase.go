package cv

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound        = errors.New("cv document not found")
	ErrInvalidDocument = errors.New("invalid cv document")
)

// Dates in the document are year-month strings, e.g. "2023-07".
var dateRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Repository abstracts persistence of the single portfolio document.
type Repository interface {
	Get(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}

// UseCase describes reading and editing the portfolio CV.
type UseCase interface {
	Get(ctx context.Context) (Document, error)
	Update(ctx context.Context, doc Document) (Document, error)
}

type service struct {
	repo Repository
}

// NewService returns the default implementation of UseCase.
func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (Document, error) {
	return s.repo.Get(ctx)
}

// Update validates the document invariants before persisting: entry ids are
// unique within each array and dates are "YYYY-MM". Entry order is whatever
// the caller sent.
func (s *service) Update(ctx context.Context, doc Document) (Document, error) {
	if err := Validate(doc); err != nil {
		return Document{}, err
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func Validate(doc Document) error {
	seen := map[string]bool{}
	for i, e := range doc.Experience {
		if err := checkID(seen, "experience", i, e.ID); err != nil {
			return err
		}
		if err := checkDate("experience", e.ID, e.StartDate); err != nil {
			return err
		}
		// nil endDate means the position is ongoing
		if e.EndDate != nil {
			if err := checkDate("experience", e.ID, *e.EndDate); err != nil {
				return err
			}
		}
	}
	seen = map[string]bool{}
	for i, e := range doc.Education {
		if err := checkID(seen, "education", i, e.ID); err != nil {
			return err
		}
		if err := checkDate("education", e.ID, e.StartDate); err != nil {
			return err
		}
		if err := checkDate("education", e.ID, e.EndDate); err != nil {
			return err
		}
	}
	seen = map[string]bool{}
	for i, p := range doc.Projects {
		if err := checkID(seen, "projects", i, p.ID); err != nil {
			return err
		}
	}
	return nil
}

func checkID(seen map[string]bool, array string, index int, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s[%d] has empty id", ErrInvalidDocument, array, index)
	}
	if seen[id] {
		return fmt.Errorf("%w: duplicate id %q in %s", ErrInvalidDocument, id, array)
	}
	seen[id] = true
	return nil
}

func checkDate(array, id, date string) error {
	if !dateRe.MatchString(date) {
		return fmt.Errorf("%w: %s entry %q has date %q, want YYYY-MM", ErrInvalidDocument, array, id, date)
	}
	return nil
}
