package group

import "fmt"

// ModelStore owns one analysis model: the fastener layout, the load case
// list and the id counters. All mutation goes through methods so that
// independent instances stay independent and tests stay deterministic.
type ModelStore struct {
	fasteners      []Fastener
	cases          []LoadCase
	nextFastenerID int
	nextCaseID     int
	activeCaseID   int
}

// NewModelStore seeds the store with one empty load case, since the model
// is never allowed to have zero load cases.
func NewModelStore() *ModelStore {
	s := &ModelStore{nextFastenerID: 1, nextCaseID: 1}
	lc, _ := s.AddLoadCase("LC1", 0, 0, 0)
	s.activeCaseID = lc.ID
	return s
}

// FromSnapshot builds a store from an externally supplied model: caller
// ids are kept and the counters continue past the largest seen.
func FromSnapshot(fs []Fastener, cases []LoadCase, activeCaseID int) (*ModelStore, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: at least one load case required", ErrInvalidInput)
	}
	s := &ModelStore{nextFastenerID: 1, nextCaseID: 1}
	for _, f := range fs {
		if err := checkFinite(f.XMM, f.YMM); err != nil {
			return nil, err
		}
		if f.ID >= s.nextFastenerID {
			s.nextFastenerID = f.ID + 1
		}
		s.fasteners = append(s.fasteners, f)
	}
	for _, lc := range cases {
		if err := checkFinite(lc.VxKN, lc.VyKN, lc.MzKNM, lc.PxMM, lc.PyMM); err != nil {
			return nil, err
		}
		if lc.ID >= s.nextCaseID {
			s.nextCaseID = lc.ID + 1
		}
		s.cases = append(s.cases, lc)
	}
	s.activeCaseID = cases[0].ID
	for _, lc := range cases {
		if lc.ID == activeCaseID {
			s.activeCaseID = activeCaseID
			break
		}
	}
	return s, nil
}

func (s *ModelStore) AddFastener(xMM, yMM float64) (Fastener, error) {
	if err := checkFinite(xMM, yMM); err != nil {
		return Fastener{}, err
	}
	f := Fastener{ID: s.nextFastenerID, XMM: xMM, YMM: yMM}
	s.nextFastenerID++
	s.fasteners = append(s.fasteners, f)
	return f, nil
}

func (s *ModelStore) RemoveFastener(id int) error {
	for i, f := range s.fasteners {
		if f.ID == id {
			s.fasteners = append(s.fasteners[:i], s.fasteners[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: no fastener with id %d", ErrInvalidInput, id)
}

// Fasteners returns a copy; the store's slice is never shared.
func (s *ModelStore) Fasteners() []Fastener {
	out := make([]Fastener, len(s.fasteners))
	copy(out, s.fasteners)
	return out
}

func (s *ModelStore) AddLoadCase(name string, vxKN, vyKN, mzKNM float64) (LoadCase, error) {
	if err := checkFinite(vxKN, vyKN, mzKNM); err != nil {
		return LoadCase{}, err
	}
	lc := LoadCase{
		ID:         s.nextCaseID,
		Name:       name,
		VxKN:       vxKN,
		VyKN:       vyKN,
		MzKNM:      mzKNM,
		AtCentroid: true,
	}
	s.nextCaseID++
	s.cases = append(s.cases, lc)
	return lc, nil
}

// UpdateLoadCase replaces every field of the stored case except its id.
func (s *ModelStore) UpdateLoadCase(id int, lc LoadCase) error {
	if err := checkFinite(lc.VxKN, lc.VyKN, lc.MzKNM, lc.PxMM, lc.PyMM); err != nil {
		return err
	}
	for i := range s.cases {
		if s.cases[i].ID == id {
			lc.ID = id
			s.cases[i] = lc
			return nil
		}
	}
	return fmt.Errorf("%w: no load case with id %d", ErrInvalidInput, id)
}

func (s *ModelStore) DeleteLoadCase(id int) error {
	if len(s.cases) <= 1 {
		return ErrLastLoadCase
	}
	for i, lc := range s.cases {
		if lc.ID == id {
			s.cases = append(s.cases[:i], s.cases[i+1:]...)
			if s.activeCaseID == id {
				s.activeCaseID = s.cases[0].ID
			}
			return nil
		}
	}
	return fmt.Errorf("%w: no load case with id %d", ErrInvalidInput, id)
}

func (s *ModelStore) SetActiveCase(id int) error {
	for _, lc := range s.cases {
		if lc.ID == id {
			s.activeCaseID = id
			return nil
		}
	}
	return fmt.Errorf("%w: no load case with id %d", ErrInvalidInput, id)
}

func (s *ModelStore) ActiveCase() LoadCase {
	for _, lc := range s.cases {
		if lc.ID == s.activeCaseID {
			return lc
		}
	}
	return s.cases[0]
}

func (s *ModelStore) LoadCases() []LoadCase {
	out := make([]LoadCase, len(s.cases))
	copy(out, s.cases)
	return out
}

// RunActive evaluates the active load case.
func (s *ModelStore) RunActive(cap CapacityInput) (CaseResult, error) {
	return RunCase(s.fasteners, s.ActiveCase(), cap)
}

// RunAll evaluates every stored load case, keyed by case id, and returns
// the stored case order alongside so reductions stay stable.
func (s *ModelStore) RunAll(cap CapacityInput) (map[int]CaseResult, []int, error) {
	results := make(map[int]CaseResult, len(s.cases))
	order := make([]int, 0, len(s.cases))
	for _, lc := range s.cases {
		res, err := RunCase(s.fasteners, lc, cap)
		if err != nil {
			return nil, nil, fmt.Errorf("load case %q: %w", lc.Name, err)
		}
		results[lc.ID] = res
		order = append(order, lc.ID)
	}
	return results, order, nil
}

// RunEnvelope evaluates every load case and folds the tables into the
// governing envelope.
func (s *ModelStore) RunEnvelope(cap CapacityInput) ([]EnvelopeRow, error) {
	results, order, err := s.RunAll(cap)
	if err != nil {
		return nil, err
	}
	return Envelope(results, order, len(s.fasteners))
}
