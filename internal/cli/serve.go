package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gradletree/gradletree/pkg/api"
	"github.com/gradletree/gradletree/pkg/model"
)

// serveCommand creates the serve command exposing extraction over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP server that extracts dependency trees on demand",
		Long: `Run an HTTP server that extracts dependency trees on demand.

POST /api/extract with {"projectDir": "...", "configurations": [...],
"offline": false} runs the pipeline for a project on this machine and
returns the tree model. Results are cached per project and option set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	byteCache, err := newByteCache(noCache, "")
	if err != nil {
		return err
	}

	extractFn := func(ctx context.Context, req api.ExtractRequest) (*model.TreeModel, error) {
		return c.extractModel(ctx, req.ProjectDir, extractOpts{
			offline:        req.Offline,
			configurations: req.Configurations,
			noCache:        noCache,
		})
	}

	srv := api.NewServer(extractFn, api.Options{
		Cache:  byteCache,
		Logger: c.Logger,
	})

	printInfo("Serving on %s", addr)
	printNextStep("Extract", `POST /api/extract {"projectDir": "/path/to/project"}`)
	return srv.ListenAndServe(ctx, addr)
}
