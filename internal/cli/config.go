package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"editorscan/internal/config"
	"editorscan/internal/editors"
)

var (
	initForce  bool
	initEditor string
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration in YAML",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&initEditor, "editor", "", "Preferred editor label to store")
	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.cfgErr != nil {
		return s.cfgErr
	}
	if outputJSON {
		return writeJSON(cmd, s.cfg)
	}

	data, err := s.cfg.Marshal()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	if len(data) == 0 || data[len(data)-1] != '\n' {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path := s.paths.ConfigFile
	exists, err := afero.Exists(configFs, path)
	if err != nil {
		return fmt.Errorf("stat config: %w", err)
	}
	if exists && !initForce {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if initEditor != "" {
		if _, ok := editors.Parse(initEditor); !ok {
			s.log.WithField("editor", initEditor).Warn("unrecognised editor label; it will be ignored until corrected")
		}
		cfg.Editor = initEditor
	}

	if err := s.paths.EnsureConfigDir(configFs); err != nil {
		return err
	}
	if err := cfg.Save(configFs, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
