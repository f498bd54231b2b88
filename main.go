package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"library-system/library"
)

func main() {
	var (
		seedPath string
		loanDays int
		dailyFee float64
	)

	root := &cobra.Command{
		Use:   "library-system",
		Short: "Interactive library circulation shell",
		Long: "library-system runs an interactive shell over an in-memory library:\n" +
			"a book catalog, a member registry and a loan/reservation workflow.\n" +
			"State lives only for the session; a JSON seed file can populate it at startup.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("loan-days") {
				cfg.loanDays = loanDays
			}
			if cmd.Flags().Changed("daily-fee") {
				cfg.dailyFee = dailyFee
			}
			if cmd.Flags().Changed("seed") {
				cfg.seedPath = seedPath
			}
			return runShell(cfg)
		},
	}

	root.Flags().StringVar(&seedPath, "seed", "", "JSON seed file to load at startup")
	root.Flags().IntVar(&loanDays, "loan-days", 14, "default loan period in days")
	root.Flags().Float64Var(&dailyFee, "daily-fee", 10, "late fee charged per day overdue")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runShell builds the in-memory library, optionally loads the seed
// file, and hands control to the interactive loop.
func runShell(cfg config) error {
	lib, err := library.NewLibrary(library.NewCatalog(), library.NewRegistry(), library.NewLoanManager())
	if err != nil {
		return err
	}

	s := &session{
		lib:   lib,
		creds: library.NewCredentialStore(cfg.bcryptCost),
		cfg:   cfg,
	}

	if cfg.seedPath != "" {
		f, err := os.Open(cfg.seedPath)
		if err != nil {
			return fmt.Errorf("open seed file: %w", err)
		}
		books, members, err := library.LoadSeed(f, lib)
		f.Close()
		if err != nil {
			return fmt.Errorf("load seed file: %w", err)
		}
		fmt.Printf("Seeded %d book(s) and %d member(s) from %s\n", books, members, cfg.seedPath)
	}

	s.run()
	return nil
}
