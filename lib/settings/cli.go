package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// HandleConfigCommand runs "swiki config <subcommand>" and returns the exit code.
func HandleConfigCommand(logger *zap.SugaredLogger, args []string, out io.Writer) int {
	if len(args) < 1 {
		printConfigHelp(out)
		return 1
	}

	ApplyRegistryDefaults()
	var err error
	switch args[0] {
	case "show":
		InitSettings(logger)
		configShow(out)
	case "dump":
		err = configDump(out)
	case "env":
		configEnv(out)
	case "get":
		err = configGet(out, args[1:])
	case "init":
		err = configInit(out)
	default:
		_, _ = fmt.Fprintln(out, "Unknown config command:", args[0])
		printConfigHelp(out)
		return 1
	}
	if err != nil {
		_, _ = fmt.Fprintln(out, "Error:", err)
		return 1
	}
	return 0
}

func configShow(out io.Writer) {
	table := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(table, "JSON KEY\tENV VAR\tCURRENT\tDEFAULT\tDESCRIPTION")
	for _, c := range Registry {
		_, _ = fmt.Fprintf(table, "%s\t%s\t%v\t%v\t%s\n", c.Key, EnvVar(c.Key), viper.Get(c.Key), c.Default, c.Description)
	}
	_ = table.Flush()
}

func writeJSON(out io.Writer, value any) error {
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

func configDump(out io.Writer) error {
	return writeJSON(out, viper.AllSettings())
}

func configEnv(out io.Writer) {
	table := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(table, "ENV VAR\tJSON KEY")
	for _, c := range Registry {
		_, _ = fmt.Fprintf(table, "%s\t%s\n", EnvVar(c.Key), c.Key)
	}
	_ = table.Flush()
}

func configGet(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: swiki config get <json-key>")
	}
	for _, c := range Registry {
		if c.Key == args[0] {
			_, err := fmt.Fprintln(out, viper.Get(c.Key))
			return err
		}
	}
	return fmt.Errorf("unknown config key: %s", args[0])
}

// configInit prints a settings.json holding every default.
func configInit(out io.Writer) error {
	defaults := map[string]any{}
	for _, c := range Registry {
		defaults[c.Key] = c.Default
	}
	return writeJSON(out, defaults)
}

func printConfigHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, `Usage:
  swiki config show
  swiki config dump
  swiki config env
  swiki config get <json-key>
  swiki config init`)
}
