package main

import (
	"fmt"
	"time"

	httpin "storefront/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

type tokenOptions struct {
	*rootOptions
	Subject string
	TTL     time.Duration
}

func newTokenCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &tokenOptions{rootOptions: rootOpts}

	c := &cobra.Command{
		Use:   "token",
		Short: "Issue a staff token signed with STAFF_TOKEN_SECRET",
		RunE: func(c *cobra.Command, _ []string) error {
			token, err := httpin.IssueStaffToken([]byte(opts.cfg.StaffTokenSecret), opts.Subject, opts.TTL, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), token)
			return nil
		},
	}

	c.Flags().StringVar(&opts.Subject, "subject", "", "staff member the token is issued to")
	c.Flags().DurationVar(&opts.TTL, "ttl", 12*time.Hour, "token lifetime")
	_ = c.MarkFlagRequired("subject")

	return c
}
