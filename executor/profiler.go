package executor

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/named-data/extremum/core"
	"github.com/pkg/errors"
)

// ProfileConfig names the profile output files; empty names disable them.
type ProfileConfig struct {
	CpuProfile string
	MemProfile string
}

type Profiler struct {
	config  ProfileConfig
	cpuFile *os.File
}

func NewProfiler(config ProfileConfig) *Profiler {
	return &Profiler{config: config}
}

func (p *Profiler) Start() (err error) {
	if p.config.CpuProfile != "" {
		p.cpuFile, err = os.Create(p.config.CpuProfile)
		if err != nil {
			return errors.Wrap(err, "unable to open output file for CPU profile")
		}

		core.LogInfo("Profiler", "Profiling CPU - outputting to ", p.config.CpuProfile)
		if err = pprof.StartCPUProfile(p.cpuFile); err != nil {
			p.cpuFile.Close()
			p.cpuFile = nil
			return errors.Wrap(err, "unable to start CPU profile")
		}
	}
	return nil
}

// Stop ends CPU profiling and writes the heap profile, if enabled.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}

	if p.config.MemProfile != "" {
		memProfileFile, err := os.Create(p.config.MemProfile)
		if err != nil {
			return errors.Wrap(err, "unable to open output file for memory profile")
		}
		defer memProfileFile.Close()

		core.LogInfo("Profiler", "Profiling memory - outputting to ", p.config.MemProfile)
		runtime.GC()
		if err := pprof.WriteHeapProfile(memProfileFile); err != nil {
			return errors.Wrap(err, "unable to write memory profile")
		}
	}
	return nil
}
