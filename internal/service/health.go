package service

import (
	"github.com/rs/zerolog"

	"coursework/internal/domain"
	"coursework/internal/repository"
)

// HealthService tracks patients and their prescriptions
type HealthService struct {
	patients      *repository.Repository[*domain.Patient]
	prescriptions *repository.Repository[*domain.Prescription]
	byPatient     *repository.Index[int, *domain.Prescription]
	log           zerolog.Logger
	events        *EventBus
}

// NewHealthService creates an empty health service
func NewHealthService(log zerolog.Logger, events *EventBus) *HealthService {
	return &HealthService{
		patients:      repository.New[*domain.Patient]("patient"),
		prescriptions: repository.New[*domain.Prescription]("prescription"),
		log:           log.With().Str("component", "health").Logger(),
		events:        events,
	}
}

// AddPatient registers a patient
func (s *HealthService) AddPatient(p *domain.Patient) error {
	if err := s.patients.Add(p); err != nil {
		return err
	}
	s.log.Debug().Int("patient", p.ID).Msg("patient added")
	s.events.Publish(Event{Type: EventEntityAdded, Collection: s.patients.Name(), EntityID: p.ID})
	return nil
}

// AddPrescription stores a prescription for a registered patient
func (s *HealthService) AddPrescription(p *domain.Prescription) error {
	if !s.patients.Contains(p.PatientID) {
		return domain.NewNotFoundError("health.add_prescription", s.patients.Name(), p.PatientID)
	}
	if err := s.prescriptions.Add(p); err != nil {
		return err
	}
	s.log.Debug().Int("prescription", p.ID).Int("patient", p.PatientID).Msg("prescription added")
	s.events.Publish(Event{Type: EventEntityAdded, Collection: s.prescriptions.Name(), EntityID: p.ID})
	return nil
}

// Seed adds patients first, then prescriptions. It stops at the first error.
func (s *HealthService) Seed(patients []*domain.Patient, prescriptions []*domain.Prescription) error {
	for _, p := range patients {
		if err := s.AddPatient(p); err != nil {
			return err
		}
	}
	for _, p := range prescriptions {
		if err := s.AddPrescription(p); err != nil {
			return err
		}
	}
	return nil
}

// BuildPrescriptionIndex (re)groups prescriptions by patient id
func (s *HealthService) BuildPrescriptionIndex() {
	if s.byPatient == nil {
		s.byPatient = repository.BuildIndex(s.prescriptions, func(p *domain.Prescription) int {
			return p.PatientID
		})
	} else {
		s.byPatient.Rebuild()
	}
	s.log.Debug().Int("patients", s.byPatient.Len()).Msg("prescription index rebuilt")
	s.events.Publish(Event{Type: EventIndexRebuilt, Collection: s.prescriptions.Name()})
}

// PrescriptionsFor returns a patient's prescriptions in insertion order. The
// index is rebuilt first when prescriptions changed since the last build.
func (s *HealthService) PrescriptionsFor(patientID int) []*domain.Prescription {
	if s.byPatient == nil || s.byPatient.Stale() {
		s.BuildPrescriptionIndex()
	}
	return s.byPatient.GetGroup(patientID)
}

// Patient returns the patient with the given id
func (s *HealthService) Patient(id int) (*domain.Patient, error) {
	return s.patients.GetByID(id)
}

// Patients returns every patient in insertion order
func (s *HealthService) Patients() []*domain.Patient {
	return s.patients.GetAll()
}

// Prescriptions returns every prescription in insertion order
func (s *HealthService) Prescriptions() []*domain.Prescription {
	return s.prescriptions.GetAll()
}
