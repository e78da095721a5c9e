package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ignaciocaff/xmlsp"
	"github.com/ignaciocaff/xmlsp/internal/config"
	"github.com/ignaciocaff/xmlsp/internal/logging"
	"github.com/ignaciocaff/xmlsp/internal/sqldriver"
	"github.com/ignaciocaff/xmlsp/pkg"
	"github.com/spf13/cobra"
)

type callFlags struct {
	configPath string
	envPath    string
	inputPath  string
	driver     string
	database   string
	xslib      string
}

func newCallCmd() *cobra.Command {
	var f callFlags
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Send an XML document to iPLUGR512K and print the result",
		Example: `  xmlsp call --input request.xml
  echo '<?xml version="1.0"?><myscript><sh>system -i "DSPLIBL"</sh></myscript>' | xmlsp call
  XMLSP_DRIVER=oracle xmlsp call --database db:1521/ORCL --input request.xml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to config file (default ./"+config.DefaultFileName+" if present)")
	cmd.Flags().StringVar(&f.envPath, "env", config.DefaultEnvFile, "Path to .env file with credentials")
	cmd.Flags().StringVarP(&f.inputPath, "input", "i", "-", "XML input file, - for stdin")
	cmd.Flags().StringVar(&f.driver, "driver", "", "database/sql driver name (odbc, oracle, pgx)")
	cmd.Flags().StringVar(&f.database, "database", "", "Database identifier or connection string")
	cmd.Flags().StringVar(&f.xslib, "xslib", "", "Library holding iPLUGR512K")
	return cmd
}

func runCall(cmd *cobra.Command, f callFlags) error {
	verbose := getVerboseFlag(cmd)
	log := logging.NewTextLogger(cmd.ErrOrStderr(), verbose)

	fileCfg, err := loadFileConfig(f)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}
	if verbose {
		fileCfg.Verbose = true
	}

	input, err := readInput(cmd.InOrStdin(), f.inputPath)
	if err != nil {
		return err
	}

	drv, err := sqldriver.Lookup(fileCfg.DriverName(), sqldriver.WithLogger(log))
	if err != nil {
		return err
	}
	xmlsp.Configure(drv, log)
	defer xmlsp.Configure(nil, nil)

	out, err := pkg.Execute(cmd.Context(), fileCfg.Invocation(), input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func loadFileConfig(f callFlags) (*config.FileConfig, error) {
	if err := config.LoadEnvFile(f.envPath); err != nil {
		return nil, fmt.Errorf("load %s: %w", f.envPath, err)
	}

	path := f.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			path = config.DefaultFileName
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if f.driver != "" {
		cfg.Driver = f.driver
	}
	if f.database != "" {
		cfg.Database = f.database
	}
	if f.xslib != "" {
		cfg.XSLib = f.xslib
	}
	return cfg, nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if len(data) == 0 {
		return "", errors.Join(ErrUsage, errors.New("empty XML input"))
	}
	return string(data), nil
}
