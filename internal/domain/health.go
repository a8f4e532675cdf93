package domain

import "time"

// Patient is a registered patient
type Patient struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Age    int    `json:"age" yaml:"age"`
	Gender string `json:"gender" yaml:"gender"`
}

// NewPatient creates a patient record
func NewPatient(id int, name string, age int, gender string) *Patient {
	return &Patient{ID: id, Name: name, Age: age, Gender: gender}
}

// EntityID returns the patient id
func (p *Patient) EntityID() int {
	return p.ID
}

// Prescription is a medication issued to a patient
type Prescription struct {
	ID             int       `json:"id" yaml:"id"`
	PatientID      int       `json:"patient_id" yaml:"patient_id"`
	MedicationName string    `json:"medication_name" yaml:"medication_name"`
	DateIssued     time.Time `json:"date_issued" yaml:"date_issued"`
}

// NewPrescription creates a prescription record
func NewPrescription(id, patientID int, medication string, issued time.Time) *Prescription {
	return &Prescription{ID: id, PatientID: patientID, MedicationName: medication, DateIssued: issued}
}

// EntityID returns the prescription id
func (p *Prescription) EntityID() int {
	return p.ID
}
