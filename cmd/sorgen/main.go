// Package main provides the CLI entry point for sorgen.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/saikiranchallabotla/sorgen-go/pkg/sorgen"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	itemsFlag  string
	itemsFile  string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sorgen",
		Short: "Generate estimate workbooks from SOR backend files",
		Long: `sorgen reads a Schedule of Rates backend workbook, detects its
heading-marked item blocks, and composes selected blocks into a new
estimate workbook.`,
	}

	generateCmd := &cobra.Command{
		Use:   "generate [backend.xlsx]",
		Short: "Compose selected item blocks into an output workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "estimate.xlsx", "Output workbook path")
	generateCmd.Flags().StringVar(&itemsFlag, "items", "", "Comma-separated item names to include")
	generateCmd.Flags().StringVar(&itemsFile, "items-file", "", "File with one item name per line")

	inspectCmd := &cobra.Command{
		Use:   "inspect [backend.xlsx]",
		Short: "Summarize a backend workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	dayratesCmd := &cobra.Command{
		Use:   "dayrates [backend.xlsx]",
		Short: "Extract the day-rate table of a temporary-works backend",
		Args:  cobra.ExactArgs(1),
		RunE:  runDayRates,
	}
	dayratesCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(generateCmd, inspectCmd, dayratesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	names, err := requestedItems()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no items requested: pass --items or --items-file")
	}

	backend, err := sorgen.LoadBackend(args[0])
	if err != nil {
		return fmt.Errorf("load backend: %w", err)
	}
	defer backend.Close()

	comp, err := sorgen.Compose(backend, names, sorgen.DefaultComposeOptions())
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	if len(comp.Missing) > 0 {
		sample := comp.Missing
		if len(sample) > 5 {
			sample = sample[:5]
		}
		fmt.Fprintf(os.Stderr, "warning: %d item(s) not found in backend (e.g. %s)\n",
			len(comp.Missing), strings.Join(sample, "; "))
	}
	for _, placed := range comp.Placed {
		for _, w := range placed.Outcome.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", placed.Name, w)
		}
	}

	if err := comp.File.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	fmt.Printf("wrote %s (%d items, %d missing)\n", outputPath, len(comp.Placed), len(comp.Missing))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	report, err := sorgen.Inspect(args[0])
	if err != nil {
		return err
	}
	return printJSON(report)
}

func runDayRates(cmd *cobra.Command, args []string) error {
	table, err := sorgen.BuildDayRates(args[0])
	if err != nil {
		return err
	}
	return printJSON(table)
}

func requestedItems() ([]string, error) {
	var names []string
	if itemsFlag != "" {
		for _, name := range strings.Split(itemsFlag, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	if itemsFile != "" {
		data, err := os.ReadFile(itemsFile)
		if err != nil {
			return nil, fmt.Errorf("read items file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				names = append(names, line)
			}
		}
	}
	return names, nil
}

func printJSON(v interface{}) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
