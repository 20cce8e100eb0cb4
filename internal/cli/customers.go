package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func customerCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}
	c.AddCommand(customerAddCmd(), customerListCmd(), customerShowCmd(), customerRemoveCmd())
	return c
}

func customerAddCmd() *cobra.Command {
	var (
		id, firstName, lastName string
		age                     int
		address, phone          string
		employeeID              string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new customer",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			c, err := a.bank.AddCustomer(id, firstName, lastName, age, address, phone, employeeID)
			if err != nil {
				return err
			}
			fmt.Printf("customer %s registered (id %s)\n", c.FullName(), c.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "customer id (10 digits)")
	cmd.Flags().StringVar(&firstName, "first", "", "first name")
	cmd.Flags().StringVar(&lastName, "last", "", "last name")
	cmd.Flags().IntVar(&age, "age", 0, "age (18-100)")
	cmd.Flags().StringVar(&address, "address", "", "address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (10 digits)")
	cmd.Flags().StringVarP(&employeeID, "employee", "e", "", "acting employee id")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}

func customerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			customers, err := a.bank.GetAllCustomers()
			if err != nil {
				return err
			}
			if len(customers) == 0 {
				fmt.Println("(no customers)")
				return nil
			}
			for _, c := range customers {
				fmt.Printf("- %s  %s, age %d, %d accounts, %d services\n",
					c.ID(), c.FullName(), c.Age(), len(c.Accounts()), len(c.Services()))
			}
			return nil
		},
	}
}

func customerShowCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one customer with accounts and services",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			c, err := a.bank.FindCustomer(id)
			if err != nil {
				return err
			}

			fmt.Printf("%s (id %s)\n", c.FullName(), c.ID())
			fmt.Printf("  age %d, phone %s\n", c.Age(), c.PhoneNumber())
			if c.Address() != "" {
				fmt.Printf("  address: %s\n", c.Address())
			}
			for i, acct := range c.Accounts() {
				fmt.Printf("  account %d: %s, balance %d", i, acct.Kind(), acct.Balance())
				switch {
				case acct.MinimumBalance() > 0:
					fmt.Printf(" (floor %d)", acct.MinimumBalance())
				case acct.TransactionLimit() > 0:
					fmt.Printf(" (limit %d)", acct.TransactionLimit())
				}
				fmt.Println()
			}
			for _, svc := range c.Services() {
				status := "inactive"
				if svc.IsActive() {
					status = "active"
				}
				if svc.ApprovedBy() != "" {
					fmt.Printf("  service: %s, %s, approved by %s\n", svc.Kind(), status, svc.ApprovedBy())
				} else {
					fmt.Printf("  service: %s, %s, unapproved\n", svc.Kind(), status)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "customer id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func customerRemoveCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a customer",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.bank.RemoveCustomer(id); err != nil {
				return err
			}
			fmt.Printf("customer %s removed\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "customer id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
