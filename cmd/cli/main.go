package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ad-tools/ad-pulse/pkg/adapters"
	"github.com/ad-tools/ad-pulse/pkg/models/api"
	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	"github.com/spf13/cobra"
)

// The CLI scores already-exported data offline: a JSON file in, the score
// on stdout. Useful for spot checks and batch jobs outside the dashboard.
func main() {
	rootCmd := &cobra.Command{
		Use:   "adpulse",
		Short: "Score ad account data offline",
	}
	rootCmd.AddCommand(fatigueCmd(), auditCmd(), priorityCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func fatigueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fatigue <input.json>",
		Short: "Score creative fatigue from a JSON input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input api.FatigueInput
			if err := readInput(args[0], &input); err != nil {
				return err
			}

			calc := scoring.NewFatigueCalculator(scoring.DefaultFatigueSettings())
			result := calc.Score(domain.FatigueInput{
				CTRChange:            input.CTRChange,
				Frequency:            input.Frequency,
				DaysActive:           input.DaysActive,
				ConversionRateChange: input.ConversionRateChange,
			})
			return writeOutput(adapters.MapFatigueResultDomainToApi(result))
		},
	}
}

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit <input.json>",
		Short: "Score an account health audit from a JSON file of issue codes per dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var codes map[string][]string
			if err := readInput(args[0], &codes); err != nil {
				return err
			}

			catalog := scoring.DefaultCatalog()
			input := domain.AuditInput{}
			for name, list := range codes {
				dim := domain.DimensionName(name)
				issues := make([]domain.Issue, 0, len(list))
				for _, code := range list {
					issue, err := catalog.CreateIssue(dim, code)
					if err != nil {
						return err
					}
					issues = append(issues, issue)
				}
				input[dim] = issues
			}

			result, err := scoring.NewAuditCalculator(catalog).Audit(input)
			if err != nil {
				return err
			}
			return writeOutput(adapters.MapAuditResultDomainToApi("", result))
		},
	}
}

func priorityCmd() *cobra.Command {
	var (
		severity   string
		impact     float64
		difficulty string
		entities   int
	)

	cmd := &cobra.Command{
		Use:   "priority",
		Short: "Compute a recommendation priority score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sev, err := adapters.MapSeverityApiToDomain(api.Severity(severity))
			if err != nil {
				return err
			}
			diff, err := adapters.MapDifficultyApiToDomain(difficulty)
			if err != nil {
				return err
			}

			score, err := scoring.NewPriorityCalculator().Priority(domain.RecommendationInput{
				Severity:         sev,
				EstimatedImpact:  impact,
				Difficulty:       diff,
				AffectedEntities: entities,
			})
			if err != nil {
				return err
			}
			return writeOutput(api.PriorityResult{PriorityScore: score})
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "medium", "severity: critical, high, medium or low")
	cmd.Flags().Float64Var(&impact, "impact", 0, "estimated monthly impact in dollars")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "fix difficulty: one_click, easy, medium or complex")
	cmd.Flags().IntVar(&entities, "entities", 1, "number of affected entities")
	return cmd
}

func readInput(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse input file: %w", err)
	}
	return nil
}

func writeOutput(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
