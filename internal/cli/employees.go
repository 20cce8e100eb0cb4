package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcalloway/backoffice/internal/models"
)

// seedEmployees are created on first run, matching the bank's bootstrap
// staff roster.
var seedEmployees = []struct {
	id        string
	firstName string
	lastName  string
	position  models.Position
}{
	{id: "1", firstName: "John", lastName: "Smith", position: models.PositionManager},
	{id: "2", firstName: "Daniel", lastName: "Smith", position: models.PositionTeller},
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the bootstrap employees if the employee store is empty",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			existing, err := a.bank.GetAllEmployees()
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				fmt.Printf("employee store already has %d employees, nothing to do\n", len(existing))
				return nil
			}

			for _, s := range seedEmployees {
				e, err := a.bank.AddEmployee(s.id, s.firstName, s.lastName, s.position)
				if err != nil {
					return err
				}
				fmt.Printf("seeded %s (%s, id %s)\n", e.FullName(), e.Position, e.ID)
			}
			return nil
		},
	}
}

func employeeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "employee",
		Short: "Inspect employees",
	}
	c.AddCommand(employeeListCmd())
	return c
}

func employeeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			employees, err := a.bank.GetAllEmployees()
			if err != nil {
				return err
			}
			if len(employees) == 0 {
				fmt.Println("(no employees; run `backoffice seed`)")
				return nil
			}
			for _, e := range employees {
				fmt.Printf("- %s  %s (%s)\n", e.ID, e.FullName(), e.Position)
			}
			return nil
		},
	}
}
