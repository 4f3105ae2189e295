package store

import (
	"context"
	"sort"
	"sync"

	"github.com/kart-io/hr-center/internal/model"
	"github.com/kart-io/hr-center/pkg/errors"
)

// MemoryFactory is an in-memory Factory used by tests and local
// development. SetError forces every subsequent call to fail with the
// given error, to exercise fault paths.
type MemoryFactory struct {
	mu sync.Mutex

	profiles    map[string]*model.UserProfile
	employees   map[string]*model.Employee
	departments map[string]*model.Department
	positions   map[string]*model.Position
	locations   map[string]*model.Location

	err error
}

// NewMemoryFactory creates an empty in-memory factory.
func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{
		profiles:    make(map[string]*model.UserProfile),
		employees:   make(map[string]*model.Employee),
		departments: make(map[string]*model.Department),
		positions:   make(map[string]*model.Position),
		locations:   make(map[string]*model.Location),
	}
}

// SetError forces every call to fail with err. Pass nil to clear.
func (f *MemoryFactory) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Counts reports how many documents each collection holds.
func (f *MemoryFactory) Counts() (profiles, employees, departments, positions, locations int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.profiles), len(f.employees), len(f.departments), len(f.positions), len(f.locations)
}

func (f *MemoryFactory) Profiles() ProfileStore       { return &memProfiles{f} }
func (f *MemoryFactory) Employees() EmployeeStore     { return &memEmployees{f} }
func (f *MemoryFactory) Departments() DepartmentStore { return &memDepartments{f} }
func (f *MemoryFactory) Positions() PositionStore     { return &memPositions{f} }
func (f *MemoryFactory) Locations() LocationStore     { return &memLocations{f} }

func (f *MemoryFactory) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *MemoryFactory) Close() error { return nil }

type memProfiles struct{ f *MemoryFactory }

func (s *memProfiles) Create(ctx context.Context, profile *model.UserProfile) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	if _, ok := s.f.profiles[profile.ID]; ok {
		return errors.ErrAlreadyExists
	}
	cp := *profile
	s.f.profiles[profile.ID] = &cp
	return nil
}

func (s *memProfiles) Get(ctx context.Context, id string) (*model.UserProfile, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	p, ok := s.f.profiles[id]
	if !ok {
		return nil, errors.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memProfiles) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	for _, p := range s.f.profiles {
		if p.UID == uid {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.ErrRecordNotFound
}

func (s *memProfiles) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	for _, p := range s.f.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.ErrRecordNotFound
}

func (s *memProfiles) List(ctx context.Context) ([]*model.UserProfile, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	out := make([]*model.UserProfile, 0, len(s.f.profiles))
	for _, p := range s.f.profiles {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memProfiles) Update(ctx context.Context, profile *model.UserProfile) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	if _, ok := s.f.profiles[profile.ID]; !ok {
		return errors.ErrRecordNotFound
	}
	cp := *profile
	s.f.profiles[profile.ID] = &cp
	return nil
}

func (s *memProfiles) Delete(ctx context.Context, id string) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	delete(s.f.profiles, id)
	return nil
}

type memEmployees struct{ f *MemoryFactory }

func (s *memEmployees) Create(ctx context.Context, employee *model.Employee) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	cp := *employee
	s.f.employees[employee.ID] = &cp
	return nil
}

func (s *memEmployees) Get(ctx context.Context, id string) (*model.Employee, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	e, ok := s.f.employees[id]
	if !ok {
		return nil, errors.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *memEmployees) List(ctx context.Context) ([]*model.Employee, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	out := make([]*model.Employee, 0, len(s.f.employees))
	for _, e := range s.f.employees {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memEmployees) Update(ctx context.Context, employee *model.Employee) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	if _, ok := s.f.employees[employee.ID]; !ok {
		return errors.ErrRecordNotFound
	}
	cp := *employee
	s.f.employees[employee.ID] = &cp
	return nil
}

func (s *memEmployees) Delete(ctx context.Context, id string) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	delete(s.f.employees, id)
	return nil
}

type memDepartments struct{ f *MemoryFactory }

func (s *memDepartments) Create(ctx context.Context, department *model.Department) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	cp := *department
	s.f.departments[department.ID] = &cp
	return nil
}

func (s *memDepartments) Get(ctx context.Context, id string) (*model.Department, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	d, ok := s.f.departments[id]
	if !ok {
		return nil, errors.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *memDepartments) List(ctx context.Context) ([]*model.Department, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	out := make([]*model.Department, 0, len(s.f.departments))
	for _, d := range s.f.departments {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memDepartments) Update(ctx context.Context, department *model.Department) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	if _, ok := s.f.departments[department.ID]; !ok {
		return errors.ErrRecordNotFound
	}
	cp := *department
	s.f.departments[department.ID] = &cp
	return nil
}

func (s *memDepartments) Delete(ctx context.Context, id string) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	delete(s.f.departments, id)
	return nil
}

type memPositions struct{ f *MemoryFactory }

func (s *memPositions) Create(ctx context.Context, position *model.Position) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	cp := *position
	s.f.positions[position.ID] = &cp
	return nil
}

func (s *memPositions) Get(ctx context.Context, id string) (*model.Position, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	p, ok := s.f.positions[id]
	if !ok {
		return nil, errors.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memPositions) List(ctx context.Context) ([]*model.Position, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	out := make([]*model.Position, 0, len(s.f.positions))
	for _, p := range s.f.positions {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memPositions) Update(ctx context.Context, position *model.Position) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	if _, ok := s.f.positions[position.ID]; !ok {
		return errors.ErrRecordNotFound
	}
	cp := *position
	s.f.positions[position.ID] = &cp
	return nil
}

func (s *memPositions) Delete(ctx context.Context, id string) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	delete(s.f.positions, id)
	return nil
}

func (s *memPositions) DeleteByDepartment(ctx context.Context, departmentID string) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	for id, p := range s.f.positions {
		if p.DepartmentID == departmentID {
			delete(s.f.positions, id)
		}
	}
	return nil
}

type memLocations struct{ f *MemoryFactory }

func (s *memLocations) Upsert(ctx context.Context, location *model.Location) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return s.f.err
	}
	cp := *location
	s.f.locations[location.ID] = &cp
	return nil
}

func (s *memLocations) Get(ctx context.Context, id string) (*model.Location, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	l, ok := s.f.locations[id]
	if !ok {
		return nil, errors.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *memLocations) List(ctx context.Context) ([]*model.Location, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if s.f.err != nil {
		return nil, s.f.err
	}
	out := make([]*model.Location, 0, len(s.f.locations))
	for _, l := range s.f.locations {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
