package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradletree/gradletree/pkg/config"
	"github.com/gradletree/gradletree/pkg/errors"
	"github.com/gradletree/gradletree/pkg/extract"
	"github.com/gradletree/gradletree/pkg/gradle"
	"github.com/gradletree/gradletree/pkg/gradle/snapshot"
	"github.com/gradletree/gradletree/pkg/model"
	"github.com/gradletree/gradletree/pkg/observability"
	"github.com/gradletree/gradletree/pkg/pom"
)

// mavenCentral is the fallback repository when neither the project nor the
// configuration declares one.
const mavenCentral = "https://repo.maven.apache.org/maven2"

// extractOpts holds the command-line flags for the extract command.
type extractOpts struct {
	snapshotFile   string   // decode an existing snapshot instead of running Gradle
	gradle         string   // Gradle executable override
	offline        bool     // skip remote POM fetching
	configurations []string // configuration name filter
	configFile     string   // explicit gradletree.toml path
	output         string   // output file path (stdout if empty)
	noCache        bool     // bypass the on-disk cache
}

// extractCommand creates the extract command.
func (c *CLI) extractCommand() *cobra.Command {
	var opts extractOpts

	cmd := &cobra.Command{
		Use:   "extract [project-dir]",
		Short: "Extract the dependency tree of a Gradle project",
		Long: `Extract the dependency tree of a Gradle project.

The command invokes the project's own Gradle (preferring the wrapper) to
capture its resolved configurations, locates a POM file for every external
package, and writes the result as JSON.

Use --snapshot to decode a previously captured resolution snapshot without
running Gradle at all.

Examples:
  gradletree extract ./my-project
  gradletree extract ./my-project -c runtimeClasspath -o deps.json
  gradletree extract --snapshot resolution.json -o deps.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if err := errors.ValidateProjectDir(dir); err != nil {
				return err
			}
			for _, name := range opts.configurations {
				if err := errors.ValidateConfigurationName(name); err != nil {
					return err
				}
			}
			return c.runExtract(cmd.Context(), dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.snapshotFile, "snapshot", "", "decode a resolution snapshot file instead of running Gradle")
	cmd.Flags().StringVar(&opts.gradle, "gradle", "", "Gradle executable (default: project wrapper, then PATH)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "do not fetch missing POMs from remote repositories")
	cmd.Flags().StringSliceVarP(&opts.configurations, "configuration", "c", nil, "only extract the named configurations (repeatable)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "path to a gradletree.toml (default: project dir, then ~/.config/gradletree/)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the on-disk POM cache")

	return cmd
}

// runExtract executes the full extraction pipeline and writes the model.
func (c *CLI) runExtract(ctx context.Context, dir string, opts extractOpts) error {
	m, err := c.extractModel(ctx, dir, opts)
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := model.WriteJSON(m, out); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Extracted %d configurations", len(m.Configurations))
		printStats(m.NodeCount(), 0, false)
		printFile(opts.output)
	}
	if len(m.Errors) > 0 {
		printWarning("%d resolution errors, see the model's errors list", len(m.Errors))
	}
	return nil
}

// extractModel runs the snapshot and assembly stages without writing output.
// It is shared between the extract command and the HTTP API.
func (c *CLI) extractModel(ctx context.Context, dir string, opts extractOpts) (*model.TreeModel, error) {
	cfg, err := c.loadConfig(dir, opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.gradle == "" {
		opts.gradle = cfg.Gradle
	}
	if cfg.Offline {
		opts.offline = true
	}

	project, err := c.loadProject(ctx, dir, opts)
	if err != nil {
		return nil, err
	}

	resolver, err := c.newPomResolver(project, cfg, opts)
	if err != nil {
		return nil, err
	}

	include := func(name string) bool {
		if len(opts.configurations) > 0 {
			for _, want := range opts.configurations {
				if name == want {
					return true
				}
			}
			return false
		}
		return cfg.IncludesConfiguration(name)
	}

	prog := newProgress(c.Logger)
	observability.Extraction().OnAssemblyStart(ctx, project.Name)
	m := extract.New(project, resolver, extract.Options{
		Include: include,
		Logger:  c.Logger.Debugf,
	}).BuildModel(ctx)
	observability.Extraction().OnAssemblyComplete(ctx, project.Name, m.NodeCount(), prog.elapsed())
	prog.done(fmt.Sprintf("Assembled %d nodes across %d configurations", m.NodeCount(), len(m.Configurations)))
	return m, nil
}

// loadConfig reads the project's configuration file, or an explicit one.
func (c *CLI) loadConfig(dir, path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(dir)
}

// loadProject obtains resolution data, from a snapshot file or a live build.
func (c *CLI) loadProject(ctx context.Context, dir string, opts extractOpts) (*gradle.Project, error) {
	if opts.snapshotFile != "" {
		c.Logger.Debugf("Decoding snapshot %s", opts.snapshotFile)
		return snapshot.Load(opts.snapshotFile)
	}

	runner := &snapshot.Runner{
		Dir:    dir,
		Gradle: opts.gradle,
		Logger: c.Logger.Debugf,
	}
	if opts.offline {
		runner.ExtraArgs = append(runner.ExtraArgs, "--offline")
	}

	spinner := newSpinnerWithContext(ctx, "Running Gradle...")
	spinner.Start()
	prog := newProgress(c.Logger)
	observability.Extraction().OnSnapshotStart(ctx, dir)
	project, err := runner.Run(ctx)
	observability.Extraction().OnSnapshotComplete(ctx, dir, prog.elapsed(), err)
	if err != nil {
		spinner.StopWithError("Gradle invocation failed")
		return nil, errors.Wrap(errors.ErrCodeGradleFailed, err, "run snapshot task in %s", dir)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Captured resolution data (Gradle %s)", project.GradleVersion))
	return project, nil
}

// newPomResolver builds the POM lookup chain: the local Gradle artifact cache
// first, then remote repositories unless running offline.
func (c *CLI) newPomResolver(project *gradle.Project, cfg *config.Config, opts extractOpts) (gradle.PomResolver, error) {
	local, err := pom.NewCacheResolver("")
	if err != nil {
		return nil, err
	}
	chain := pom.Chain{local}

	if opts.offline {
		return chain, nil
	}

	store, err := pomStoreDir()
	if err != nil {
		return nil, err
	}
	byteCache, err := newByteCache(opts.noCache, cfg.Cache.Dir)
	if err != nil {
		return nil, err
	}
	ttl, err := cfg.CacheTTL()
	if err != nil {
		return nil, err
	}
	misses, err := newMissCache(opts.noCache, ttl)
	if err != nil {
		return nil, err
	}

	remote, err := pom.NewRemoteResolver(repositoryURLs(project, cfg), store, pom.RemoteOptions{
		Cache:     byteCache,
		MissCache: misses,
		TTL:       ttl,
		Logger:    c.Logger.Debugf,
	})
	if err != nil {
		return nil, err
	}
	return append(chain, remote), nil
}

// repositoryURLs collects the remote repositories to query for POMs: the
// Maven repositories the build declares plus any configured extras, falling
// back to Maven Central when neither names one.
func repositoryURLs(project *gradle.Project, cfg *config.Config) []string {
	seen := make(map[string]bool)
	var urls []string
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	for _, repo := range project.Repositories {
		if repo.Kind == gradle.RepoMaven {
			add(repo.URL)
		}
	}
	for _, u := range cfg.Repositories {
		add(u)
	}
	if len(urls) == 0 {
		urls = []string{mavenCentral}
	}
	return urls
}
