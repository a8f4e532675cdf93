package loader

import (
	"time"

	"coursework/internal/domain"
)

// DefaultSeed returns the built-in demo data
func DefaultSeed() *Seed {
	date := func(s string) time.Time {
		t, _ := time.Parse(DateLayout, s)
		return t
	}
	today := time.Now()

	return &Seed{
		Electronics: []*domain.ElectronicItem{
			domain.NewElectronicItem(1, "Laptop", 10, "Dell", 12),
			domain.NewElectronicItem(2, "Phone", 20, "Apple", 24),
			domain.NewElectronicItem(3, "Tablet", 15, "Samsung", 6),
		},
		Groceries: []*domain.GroceryItem{
			domain.NewGroceryItem(1, "Milk", 50, date("2025-08-30")),
			domain.NewGroceryItem(2, "Bread", 30, date("2025-08-20")),
			domain.NewGroceryItem(3, "Eggs", 100, date("2025-08-25")),
		},
		Patients: []*domain.Patient{
			domain.NewPatient(1, "John Doe", 30, "Male"),
			domain.NewPatient(2, "Jane Smith", 25, "Female"),
			domain.NewPatient(3, "Bob Johnson", 40, "Male"),
		},
		Prescriptions: []*domain.Prescription{
			domain.NewPrescription(1, 1, "Aspirin", today),
			domain.NewPrescription(2, 1, "Ibuprofen", today),
			domain.NewPrescription(3, 2, "Paracetamol", today),
			domain.NewPrescription(4, 3, "Antibiotic", today),
			domain.NewPrescription(5, 2, "Vitamin C", today),
		},
	}
}
