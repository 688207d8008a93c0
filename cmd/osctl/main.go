package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"opticai/internal/domain/document"
	"opticai/internal/domain/entities"
	"opticai/internal/domain/orderform"
	"opticai/internal/infrastructure/storage"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	timeout time.Duration

	// render flags
	renderKind   string
	orderFile    string
	tenantFile   string
	outputPath   string
	outputDir    string
	skipLogoLoad bool

	// next-number flags
	ordersFile string
)

var errBlockingErrors = errors.New("order has blocking errors")

var rootCmd = &cobra.Command{
	Use:   "osctl",
	Short: "Offline tools for OpticAI service orders",
	Long: `osctl works on service orders exported as JSON.

It renders the lab and sale slips, runs the save validation and computes the
next order number without a running API.`,
	SilenceUsage: true,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the lab or sale slip of an order to PDF",
	RunE:  runRender,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report blocking errors and warnings of an order",
	RunE:  runValidate,
}

var nextNumberCmd = &cobra.Command{
	Use:   "next-number",
	Short: "Print the next order number for a list of orders",
	RunE:  runNextNumber,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	renderCmd.Flags().StringVar(&renderKind, "kind", string(document.KindLab), "Document kind: lab or sale")
	renderCmd.Flags().StringVar(&orderFile, "order", "", "Order JSON file (required)")
	renderCmd.Flags().StringVar(&tenantFile, "tenant", "", "Tenant JSON file")
	renderCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (default: OS-{n}-{kind}.pdf)")
	renderCmd.Flags().StringVar(&outputDir, "dir", ".", "Output directory when --out is not set")
	renderCmd.Flags().BoolVar(&skipLogoLoad, "no-logo", false, "Do not fetch the tenant logo")

	validateCmd.Flags().StringVar(&orderFile, "order", "", "Order JSON file (required)")

	nextNumberCmd.Flags().StringVar(&ordersFile, "orders", "", "JSON array of orders (required)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(nextNumberCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, _ []string) error {
	kind, err := document.ParseKind(renderKind)
	if err != nil {
		return err
	}
	order, err := readOrder(orderFile)
	if err != nil {
		return err
	}
	var tenant entities.Tenant
	if tenantFile != "" {
		if err := readJSON(tenantFile, &tenant); err != nil {
			return err
		}
	}

	var fetcher document.BinaryFetcher
	if !skipLogoLoad {
		fetcher = &storage.LogoFetcher{HTTP: storage.NewHTTPFetcher(timeout)}
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()
	doc, err := document.NewRenderer(fetcher).Render(ctx, kind, orderform.Normalize(order), tenant)
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = filepath.Join(outputDir, doc.Filename)
	}
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", path, len(doc.Data))
	return nil
}

// runValidate prints warnings first and then every blocking error. It fails
// only when a blocking error exists.
func runValidate(cmd *cobra.Command, _ []string) error {
	order, err := readOrder(orderFile)
	if err != nil {
		return err
	}
	order = orderform.Normalize(order)
	out := cmd.OutOrStdout()

	draft := orderform.LoadDraft(order, time.Now())
	for _, w := range orderform.DeriveWarnings(draft) {
		fmt.Fprintf(out, "warning %s: %s\n", w.Field, w.Message)
	}

	blocking := orderform.BlockingErrors(order)
	for _, fe := range blocking {
		fmt.Fprintf(out, "error %s: %s\n", fe.Field, fe.Err)
	}
	if len(blocking) > 0 {
		return errBlockingErrors
	}
	fmt.Fprintln(out, "ok")
	return nil
}

func runNextNumber(cmd *cobra.Command, _ []string) error {
	if ordersFile == "" {
		return errors.New("--orders is required")
	}
	var orders []entities.ServiceOrder
	if err := readJSON(ordersFile, &orders); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), orderform.NextOrderNumber(orderform.MaxOrderNumber(orders)))
	return nil
}

func readOrder(path string) (entities.ServiceOrder, error) {
	if path == "" {
		return entities.ServiceOrder{}, errors.New("--order is required")
	}
	var o entities.ServiceOrder
	if err := readJSON(path, &o); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
