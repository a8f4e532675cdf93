package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"coursework/internal/loader"
	"coursework/internal/service"
)

func healthCmd(a *app) *cobra.Command {
	var (
		seedPath  string
		patientID int
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "List patients and the prescriptions of one patient",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			seed, err := loader.LoadSeedOrDefault(firstNonEmpty(seedPath, a.cfg.Data.Seed))
			if err != nil {
				return err
			}

			svc := service.NewHealthService(a.log, a.events)
			if err := svc.Seed(seed.Patients, seed.Prescriptions); err != nil {
				return err
			}
			svc.BuildPrescriptionIndex()

			for _, p := range svc.Patients() {
				fmt.Fprintf(out, "Id: %d, Name: %s, Age: %d, Gender: %s\n", p.ID, p.Name, p.Age, p.Gender)
			}

			fmt.Fprintf(out, "Prescriptions for Patient ID %d:\n", patientID)
			for _, p := range svc.PrescriptionsFor(patientID) {
				fmt.Fprintf(out, "Id: %d, Medication: %s, Date Issued: %s\n",
					p.ID, p.MedicationName, p.DateIssued.Format(time.DateOnly))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML seed file (default: built-in demo data)")
	cmd.Flags().IntVarP(&patientID, "patient", "p", 1, "patient whose prescriptions are listed")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
