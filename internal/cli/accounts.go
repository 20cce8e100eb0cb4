package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcalloway/backoffice/internal/models"
)

func accountCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "account",
		Short: "Open accounts and move money",
	}
	c.AddCommand(accountOpenCmd(), accountDepositCmd(), accountWithdrawCmd())
	return c
}

func accountOpenCmd() *cobra.Command {
	var (
		customerID  string
		accountType string
		deposit     int64
		employeeID  string
	)

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a savings or checking account for a customer",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			acct, err := a.bank.OpenAccount(customerID, models.AccountKind(accountType), deposit, employeeID)
			if err != nil {
				return err
			}
			fmt.Printf("%s account opened for customer %s, balance %d\n", acct.Kind(), customerID, acct.Balance())
			return nil
		},
	}

	cmd.Flags().StringVarP(&customerID, "customer", "c", "", "customer id")
	cmd.Flags().StringVarP(&accountType, "type", "t", "savings", "account type: savings or checking")
	cmd.Flags().Int64Var(&deposit, "deposit", 0, "opening deposit")
	cmd.Flags().StringVarP(&employeeID, "employee", "e", "", "acting employee id")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}

func accountDepositCmd() *cobra.Command {
	var (
		customerID string
		index      int
		amount     int64
	)

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into one of a customer's accounts",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.bank.Deposit(customerID, index, amount); err != nil {
				return err
			}
			fmt.Printf("deposited %d into account %d of customer %s\n", amount, index, customerID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&customerID, "customer", "c", "", "customer id")
	cmd.Flags().IntVar(&index, "account", 0, "account position in the customer's list")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to deposit")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func accountWithdrawCmd() *cobra.Command {
	var (
		customerID string
		index      int
		amount     int64
	)

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from one of a customer's accounts",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			ok, err := a.bank.Withdraw(customerID, index, amount)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("withdrawal of %d denied by account policy\n", amount)
				return nil
			}
			fmt.Printf("withdrew %d from account %d of customer %s\n", amount, index, customerID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&customerID, "customer", "c", "", "customer id")
	cmd.Flags().IntVar(&index, "account", 0, "account position in the customer's list")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to withdraw")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
