package main

import (
	"context"
	"fmt"
	"io"

	"storefront/cmd"
	"storefront/internal/adapters/out/catalogrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type quoteOptions struct {
	*rootOptions
	Options  []string
	Quantity string
}

func newQuoteCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &quoteOptions{rootOptions: rootOpts}

	c := &cobra.Command{
		Use:   "quote <product>",
		Short: "Price a configured product from the local catalog",
		Long: `Price a configured product from the local catalog.

Example:
  storefront quote house-coffee --option large --option oat --quantity 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runQuote(c.Context(), opts, args[0], c.OutOrStdout())
		},
	}

	c.Flags().StringArrayVarP(&opts.Options, "option", "o", nil, "selected option id (repeatable)")
	c.Flags().StringVarP(&opts.Quantity, "quantity", "q", "1", "quantity")

	return c
}

func runQuote(ctx context.Context, opts *quoteOptions, product string, out io.Writer) error {
	quantity, err := decimal.NewFromString(opts.Quantity)
	if err != nil {
		return fmt.Errorf("invalid --quantity %q: %w", opts.Quantity, err)
	}

	products, err := catalogrepo.Load(opts.cfg.CatalogPath, opts.logger)
	if err != nil {
		return err
	}

	query, err := queries.NewQuotePriceQuery(product, customization.NewSelection(opts.Options...), quantity)
	if err != nil {
		return err
	}
	resp, err := queries.NewQuotePriceQueryHandler(products, cmd.NewQuoter()).Handle(ctx, query)
	if err != nil {
		return err
	}

	pricing := resp.Quote.Pricing
	fmt.Fprintf(out, "%s x %s\n", resp.Product.Name(), resp.Quantity)
	fmt.Fprintf(out, "  unit price  %s\n", kernel.FormatPrice(pricing.UnitPrice))
	fmt.Fprintf(out, "  subtotal    %s\n", kernel.FormatPrice(pricing.Subtotal))
	for _, t := range pricing.Taxes {
		fmt.Fprintf(out, "  %-11s %s\n", t.Name, kernel.FormatPrice(t.Amount))
	}
	fmt.Fprintf(out, "  total       %s\n", kernel.FormatPrice(pricing.Total))

	for _, id := range resp.Quote.Unknown {
		fmt.Fprintf(out, "! unknown option %q\n", id)
	}
	for _, msg := range resp.Quote.Validation.Messages() {
		fmt.Fprintf(out, "! %s\n", msg)
	}
	if resp.QuantityError != nil {
		fmt.Fprintf(out, "! %v\n", resp.QuantityError)
	}
	return nil
}
