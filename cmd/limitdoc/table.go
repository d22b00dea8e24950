package main

import (
	"fmt"
	"log/slog"

	"github.com/bjaus/limitdoc"
	"github.com/spf13/cobra"
)

func loadCatalog(cmd *cobra.Command, path string) (limitdoc.Catalog, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return limitdoc.Catalog{}, err
	}
	defer in.Close()
	return limitdoc.LoadCatalog(in)
}

func newTableCmd(opts *globalOptions) *cobra.Command {
	var (
		file    string
		service string
		format  string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render one service's limits as a table",
		Example: `  limitdoc table --service EC2 < limits.yaml
  limitdoc table --service S3 --format markdown --file limits.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			f, err := limitdoc.ParseFormat(format)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cmd, file)
			if err != nil {
				return err
			}
			svc, ok := catalog.Service(service)
			if !ok {
				return fmt.Errorf("service %q not in catalog (have %v)", service, catalog.Names())
			}
			log.Debug("rendering table",
				slog.String("service", svc.Name),
				slog.String("format", f.String()),
				slog.Int("limits", len(svc.Limits)),
			)
			return limitdoc.WriteTable(cmd.OutOrStdout(), f, limitdoc.LimitLayout(limitdoc.CheckMark(f)), svc.Limits)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file (default stdin)")
	cmd.Flags().StringVarP(&service, "service", "s", "", "service to render")
	cmd.Flags().StringVarP(&format, "format", "o", string(limitdoc.RST), fmt.Sprintf("output format %v", limitdoc.Formats()))
	_ = cmd.MarkFlagRequired("service")
	return cmd
}

func newCatalogCmd(opts *globalOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Render every service as an RST section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cmd, file)
			if err != nil {
				return err
			}
			log.Debug("rendering catalog", slog.Int("services", len(catalog.Services)))
			text, err := catalog.Render(limitdoc.LimitLayout(limitdoc.CheckMark(limitdoc.RST)))
			if err != nil {
				return err
			}
			_, err = text.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file (default stdin)")
	return cmd
}
