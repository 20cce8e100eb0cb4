package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcalloway/backoffice/internal/models"
)

func serviceCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "service",
		Short: "Service applications",
	}
	c.AddCommand(serviceApplyCmd())
	return c
}

func serviceApplyCmd() *cobra.Command {
	var (
		customerID  string
		serviceType string
		employeeID  string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for a loan or credit card on behalf of a customer",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			eligible, err := a.bank.ApplyForService(customerID, models.ServiceKind(serviceType), employeeID)
			if err != nil {
				return err
			}
			if !eligible {
				fmt.Printf("customer %s is not eligible for %s\n", customerID, serviceType)
				return nil
			}
			fmt.Printf("%s approved for customer %s\n", serviceType, customerID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&customerID, "customer", "c", "", "customer id")
	cmd.Flags().StringVarP(&serviceType, "type", "t", "loan", "service type: loan or credit_card")
	cmd.Flags().StringVarP(&employeeID, "employee", "e", "", "acting employee id")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}
