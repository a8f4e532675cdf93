// Package loader reads YAML seed files for the warehouse and health demos.
package loader

import (
	"fmt"
	"os"
	"time"

	"coursework/internal/domain"

	"gopkg.in/yaml.v3"
)

// DateLayout is the date format used by seed files
const DateLayout = "2006-01-02"

// SeedYAML represents the seed file structure
type SeedYAML struct {
	Version       string             `yaml:"version"`
	Electronics   []ElectronicYAML   `yaml:"electronics,omitempty"`
	Groceries     []GroceryYAML      `yaml:"groceries,omitempty"`
	Patients      []PatientYAML      `yaml:"patients,omitempty"`
	Prescriptions []PrescriptionYAML `yaml:"prescriptions,omitempty"`
}

// ElectronicYAML represents an electronics item
type ElectronicYAML struct {
	ID             int    `yaml:"id"`
	Name           string `yaml:"name"`
	Quantity       int    `yaml:"quantity"`
	Brand          string `yaml:"brand"`
	WarrantyMonths int    `yaml:"warranty_months"`
}

// GroceryYAML represents a grocery item
type GroceryYAML struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
	Expiry   string `yaml:"expiry"`
}

// PatientYAML represents a patient
type PatientYAML struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Age    int    `yaml:"age"`
	Gender string `yaml:"gender"`
}

// PrescriptionYAML represents a prescription
type PrescriptionYAML struct {
	ID         int    `yaml:"id"`
	PatientID  int    `yaml:"patient_id"`
	Medication string `yaml:"medication"`
	Issued     string `yaml:"issued,omitempty"`
}

// Seed is the decoded seed data
type Seed struct {
	Electronics   []*domain.ElectronicItem
	Groceries     []*domain.GroceryItem
	Patients      []*domain.Patient
	Prescriptions []*domain.Prescription
}

// LoadSeed loads seed data from a YAML file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed parses YAML bytes into seed data
func ParseSeed(data []byte) (*Seed, error) {
	var y SeedYAML
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return convertSeed(&y)
}

// LoadSeedOrDefault loads path, or returns DefaultSeed when path is empty
func LoadSeedOrDefault(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	return LoadSeed(path)
}

func convertSeed(y *SeedYAML) (*Seed, error) {
	seed := &Seed{}

	for _, e := range y.Electronics {
		seed.Electronics = append(seed.Electronics,
			domain.NewElectronicItem(e.ID, e.Name, e.Quantity, e.Brand, e.WarrantyMonths))
	}

	for _, g := range y.Groceries {
		expiry, err := time.Parse(DateLayout, g.Expiry)
		if err != nil {
			return nil, fmt.Errorf("grocery %d: invalid expiry %q: %w", g.ID, g.Expiry, err)
		}
		seed.Groceries = append(seed.Groceries, domain.NewGroceryItem(g.ID, g.Name, g.Quantity, expiry))
	}

	for _, p := range y.Patients {
		seed.Patients = append(seed.Patients, domain.NewPatient(p.ID, p.Name, p.Age, p.Gender))
	}

	for _, p := range y.Prescriptions {
		issued := time.Now()
		if p.Issued != "" {
			parsed, err := time.Parse(DateLayout, p.Issued)
			if err != nil {
				return nil, fmt.Errorf("prescription %d: invalid issued date %q: %w", p.ID, p.Issued, err)
			}
			issued = parsed
		}
		seed.Prescriptions = append(seed.Prescriptions,
			domain.NewPrescription(p.ID, p.PatientID, p.Medication, issued))
	}

	return seed, nil
}

// ExportSeed renders seed data back to YAML
func ExportSeed(seed *Seed) ([]byte, error) {
	y := SeedYAML{Version: "1"}

	for _, e := range seed.Electronics {
		y.Electronics = append(y.Electronics, ElectronicYAML{
			ID: e.ID, Name: e.Name, Quantity: e.Quantity, Brand: e.Brand, WarrantyMonths: e.WarrantyMonths,
		})
	}
	for _, g := range seed.Groceries {
		y.Groceries = append(y.Groceries, GroceryYAML{
			ID: g.ID, Name: g.Name, Quantity: g.Quantity, Expiry: g.ExpiryDate.Format(DateLayout),
		})
	}
	for _, p := range seed.Patients {
		y.Patients = append(y.Patients, PatientYAML{ID: p.ID, Name: p.Name, Age: p.Age, Gender: p.Gender})
	}
	for _, p := range seed.Prescriptions {
		y.Prescriptions = append(y.Prescriptions, PrescriptionYAML{
			ID: p.ID, PatientID: p.PatientID, Medication: p.MedicationName, Issued: p.DateIssued.Format(DateLayout),
		})
	}

	return yaml.Marshal(&y)
}
