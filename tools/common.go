package tools

import (
	"flag"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/named-data/extremum/core"
	"github.com/named-data/extremum/executor"
)

// options are the flags shared by every tool.
type options struct {
	configFile string
	logLevel   string
	profile    executor.ProfileConfig
	profiler   *executor.Profiler
}

func (o *options) register(flagset *flag.FlagSet) {
	flagset.StringVar(&o.configFile, "config", "", "Load configuration from the specified TOML file")
	flagset.StringVar(&o.logLevel, "log-level", "", "Log level (TRACE, DEBUG, INFO, WARN, ERROR, FATAL)")
	flagset.StringVar(&o.profile.CpuProfile, "cpu-profile", "", "Enable CPU profiling (output to specified file)")
	flagset.StringVar(&o.profile.MemProfile, "mem-profile", "", "Enable memory profiling (output to specified file)")
}

// apply loads the configuration file and sets up logging. Command line
// values take precedence over the file.
func (o *options) apply(logOut io.Writer) error {
	if o.configFile != "" {
		if err := core.LoadConfig(o.configFile); err != nil {
			return err
		}
	}
	if o.logLevel != "" {
		core.SetConfig("core.log_level", o.logLevel)
	}
	core.InitializeLogger(logOut)

	o.profiler = executor.NewProfiler(o.profile)
	return o.profiler.Start()
}

// finish stops profiling started by apply.
func (o *options) finish() {
	if o.profiler == nil {
		return
	}
	if err := o.profiler.Stop(); err != nil {
		core.LogWarn("Profiler", err)
	}
	o.profiler = nil
}

func newFlagSet(name string, usage func()) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ContinueOnError)
	flagset.SetOutput(os.Stderr)
	flagset.Usage = usage
	return flagset
}

// exit reports err and terminates with a failure status.
func exit(module string, err error) {
	core.LogError(module, err)
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}
