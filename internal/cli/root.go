package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"editorscan/internal/config"
	"editorscan/internal/editors"
	"editorscan/internal/logx"
	"editorscan/internal/paths"
)

var (
	configFile string
	outputJSON bool
	verbose    bool
	logToFile  bool

	// Tests swap these for in-memory filesystems.
	configFs afero.Fs = afero.NewOsFs()
	probeFs  afero.Fs = afero.NewOsFs()
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "editorscan",
		Short:         "Find external code editors installed on this machine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log probe details to stderr")
	cmd.PersistentFlags().BoolVar(&logToFile, "log-file", false, "Write logs to a timestamped file in the state directory")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newWhichCmd())
	cmd.AddCommand(newPickCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newLabelsCmd())

	return cmd
}

// session bundles what every command needs: resolved paths, the loaded
// configuration, a logger and a detector wired to both.
type session struct {
	paths    paths.AppPaths
	cfg      config.Config
	cfgErr   error
	log      *logrus.Logger
	detector *editors.Detector
	closer   io.Closer
}

func openSession(cmd *cobra.Command) (*session, error) {
	pp, err := paths.Resolve(configFile)
	if err != nil {
		return nil, err
	}

	cfg, cfgErr := config.Load(configFs, pp.ConfigFile)
	if cfgErr != nil {
		cfg = config.Default()
	}

	s := &session{paths: pp, cfg: cfg, cfgErr: cfgErr}
	if logToFile {
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, closer, err := logx.NewFile(pp, level)
		if err != nil {
			return nil, err
		}
		s.log, s.closer = logger, closer
	} else {
		level := "warn"
		if verbose {
			level = "debug"
		}
		s.log = logx.New(cmd.ErrOrStderr(), level)
	}

	if cfgErr != nil {
		s.log.WithError(cfgErr).Warn("using default configuration")
	}

	s.detector = editors.NewDetector(editors.WithFs(probeFs), editors.WithLogger(s.log))
	return s, nil
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
