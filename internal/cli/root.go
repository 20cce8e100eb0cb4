// Package cli is the thin command-line front end over the bank facade. It
// does no business logic: each command parses flags, calls one facade
// operation, and prints the outcome.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jcalloway/backoffice/internal/bank"
	"github.com/jcalloway/backoffice/internal/config"
	"github.com/jcalloway/backoffice/internal/repository"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "backoffice",
		Short:        "Retail-banking back office over a flat-file store",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		seedCmd(),
		customerCmd(),
		accountCmd(),
		serviceCmd(),
		employeeCmd(),
	)
	return cmd
}

// app bundles one wired instance of the system. Every command builds a fresh
// one, runs its operation, and tears it down.
type app struct {
	bank    *bank.Bank
	cleanup func() error
}

func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, cleanup, err := cfg.Logger.NewLogger()
	if err != nil {
		return nil, err
	}

	customers := repository.NewFileCustomerRepository(cfg.Storage.CustomersPath(), logger)
	employees := repository.NewFileEmployeeRepository(cfg.Storage.EmployeesPath(), logger)

	return &app{
		bank:    bank.New(customers, employees, logger),
		cleanup: cleanup,
	}, nil
}

func (a *app) close() {
	_ = a.cleanup()
}
