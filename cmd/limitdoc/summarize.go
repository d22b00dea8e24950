package main

import (
	"github.com/bjaus/limitdoc"
	"github.com/spf13/cobra"
)

func newSummarizeCmd(opts *globalOptions) *cobra.Command {
	var (
		command    string
		policyFile string
		listing    bool
		verbatim   bool
		exclude    []string
	)
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Shorten a command transcript read from stdin",
		Example: `  awslimitchecker -l | limitdoc summarize --command "awslimitchecker -l" --listing
  limitdoc summarize --policy policy.yaml < output.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			policy := limitdoc.DefaultPolicy()
			if policyFile != "" {
				in, err := openInput(cmd, policyFile)
				if err != nil {
					return err
				}
				policy, err = limitdoc.LoadPolicy(in)
				in.Close()
				if err != nil {
					return err
				}
			}
			if listing {
				policy.Anchors = append(policy.Anchors, limitdoc.ListingAnchors()...)
			}
			if verbatim {
				policy.Verbatim = true
			}
			if len(exclude) > 0 {
				preds := make([]limitdoc.Predicate, 0, len(exclude)+1)
				if policy.Exclude != nil {
					preds = append(preds, policy.Exclude)
				}
				for _, phrase := range exclude {
					preds = append(preds, limitdoc.Contains(phrase))
				}
				policy.Exclude = limitdoc.AnyOf(preds...)
			}
			policy.Logger = log

			transcript, err := limitdoc.ReadTranscript(command, cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = limitdoc.Summarize(transcript, policy).WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVarP(&command, "command", "c", "", "command line shown above the output")
	cmd.Flags().StringVarP(&policyFile, "policy", "p", "", "YAML summary policy file")
	cmd.Flags().BoolVar(&listing, "listing", false, "keep the first API-sourced and first unlimited value lines")
	cmd.Flags().BoolVar(&verbatim, "verbatim", false, "keep every line untouched")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "drop lines containing this phrase (repeatable)")
	return cmd
}
