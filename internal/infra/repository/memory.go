package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/identity"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// MemoryStore backs the appointment repository and the identity directory
// without a database. It is used by unit tests and by dev runs without
// DATABASE_URL. The mutex spans check-and-create, so the live-slot
// uniqueness guarantee matches the Postgres partial index.
type MemoryStore struct {
	mu sync.Mutex

	nextAppointmentID uint
	nextDoctorID      uint
	nextPatientID     uint

	appointments map[uint]models.Appointment
	doctors      map[uint]models.Doctor
	patients     map[uint]models.Patient
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextAppointmentID: 1,
		nextDoctorID:      1,
		nextPatientID:     1,
		appointments:      make(map[uint]models.Appointment),
		doctors:           make(map[uint]models.Doctor),
		patients:          make(map[uint]models.Patient),
	}
}

// --------------------------------------------------
// Seeding (identity side)
// --------------------------------------------------

func (s *MemoryStore) AddDoctor(d models.Doctor) models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == 0 {
		d.ID = s.nextDoctorID
		s.nextDoctorID++
	}
	s.doctors[d.ID] = d
	return d
}

func (s *MemoryStore) AddPatient(p models.Patient) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		p.ID = s.nextPatientID
		s.nextPatientID++
	}
	s.patients[p.ID] = p
	return p
}

// --------------------------------------------------
// domain.Repository
// --------------------------------------------------

func (s *MemoryStore) Create(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slotTakenLocked(ap.DoctorID, ap.Date, ap.Time) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	ap.ID = s.nextAppointmentID
	s.nextAppointmentID++
	s.appointments[ap.ID] = s.withAssociations(*ap)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return &ap, nil
}

func (s *MemoryStore) Update(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	s.appointments[ap.ID] = s.withAssociations(*ap)
	return nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(func(models.Appointment) bool { return true }), nil
}

func (s *MemoryStore) ListByDoctorUsername(ctx context.Context, username string) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(func(ap models.Appointment) bool {
		d, ok := s.doctors[ap.DoctorID]
		return ok && d.Username == username
	}), nil
}

func (s *MemoryStore) ListByPatientName(ctx context.Context, patientName string) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(func(ap models.Appointment) bool {
		return ap.PatientName == patientName
	}), nil
}

func (s *MemoryStore) ListByPatientID(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(func(ap models.Appointment) bool {
		return ap.PatientID == patientID
	}), nil
}

func (s *MemoryStore) SlotTaken(ctx context.Context, doctorID uint, date, timeLabel string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.slotTakenLocked(doctorID, date, timeLabel), nil
}

func (s *MemoryStore) TakenSlots(ctx context.Context, doctorID uint, date string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var labels []string
	for _, ap := range s.appointments {
		if ap.DoctorID == doctorID && ap.Date == date && ap.Status != string(domain.StatusCancelled) {
			labels = append(labels, ap.Time)
		}
	}
	sort.Strings(labels)
	return labels, nil
}

// --------------------------------------------------
// identity.Directory
// --------------------------------------------------

func (s *MemoryStore) ResolveDoctor(ctx context.Context, ref string) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		if d, ok := s.doctors[uint(id)]; ok {
			return &d, nil
		}
	}
	for _, d := range s.doctors {
		if d.Username == ref {
			return &d, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeDoctorNotFound)
}

func (s *MemoryStore) ResolvePatient(ctx context.Context, ref string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.patients {
		if p.Username == ref {
			return &p, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodePatientNotFound)
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (s *MemoryStore) slotTakenLocked(doctorID uint, date, timeLabel string) bool {
	for _, ap := range s.appointments {
		if ap.DoctorID == doctorID &&
			ap.Date == date &&
			ap.Time == timeLabel &&
			ap.Status != string(domain.StatusCancelled) {
			return true
		}
	}
	return false
}

func (s *MemoryStore) withAssociations(ap models.Appointment) models.Appointment {
	if d, ok := s.doctors[ap.DoctorID]; ok {
		ap.Doctor = d
	}
	if p, ok := s.patients[ap.PatientID]; ok {
		ap.Patient = p
	}
	return ap
}

func (s *MemoryStore) collect(match func(models.Appointment) bool) []models.Appointment {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if match(ap) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Compile-time checks
var (
	_ domain.Repository  = (*MemoryStore)(nil)
	_ identity.Directory = (*MemoryStore)(nil)
)
