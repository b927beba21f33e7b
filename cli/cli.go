// Package cli holds flags and setup shared by the commands in cmd/ilint.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"syscall"
)

// version can be set by the linker.
var version string

// Version returns the version set by the linker, the module version from
// the build information, or "unknown".
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		// This will be "(devel)" for binaries not built by
		// "go install PACKAGE@VERSION".
		return info.Main.Version
	}
	return "unknown"
}

type Flags struct {
	showVersion    bool
	cpuprofile     string
	memprofile     string
	cpuProfileFile *os.File
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
	fs.StringVar(&f.cpuprofile, "cpuprofile", "", "write cpu profile to given file name")
	fs.StringVar(&f.memprofile, "memprofile", "", "write memory profile to given file name")
}

// Initializer is implemented by flag groups that need to validate or act
// on their values once flags are parsed.
type Initializer interface {
	Init() error
}

// Init runs each initializer, starts any requested profiling and returns a
// context that is canceled on SIGINT, SIGPIPE or SIGTERM along with a
// function that must be called when the command finishes.
func (f *Flags) Init(all ...Initializer) (context.Context, func(), error) {
	if f.showVersion {
		fmt.Printf("Version: %s\n", Version())
		os.Exit(0)
	}
	for _, flags := range all {
		if err := flags.Init(); err != nil {
			return nil, nil, err
		}
	}
	if f.cpuprofile != "" {
		if err := f.startCPUProfile(); err != nil {
			return nil, nil, err
		}
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGPIPE, syscall.SIGTERM)
	cleanup := func() {
		cancel()
		f.stopProfiles()
	}
	return &interruptedContext{ctx}, cleanup, nil
}

type interruptedContext struct{ context.Context }

func (i *interruptedContext) Err() error {
	err := i.Context.Err()
	if errors.Is(err, context.Canceled) {
		return errors.New("interrupted")
	}
	return err
}

func (f *Flags) startCPUProfile() error {
	file, err := os.Create(f.cpuprofile)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return err
	}
	f.cpuProfileFile = file
	return nil
}

func (f *Flags) stopProfiles() {
	if f.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		f.cpuProfileFile.Close()
		f.cpuProfileFile = nil
	}
	if f.memprofile != "" {
		file, err := os.Create(f.memprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "memprofile: %s\n", err)
			return
		}
		runtime.GC()
		pprof.Lookup("allocs").WriteTo(file, 0)
		file.Close()
	}
}
