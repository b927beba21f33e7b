// Package logflags configures a zap logger from command-line flags.
package logflags

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type FileMode string

const (
	// FileModeAppend appends to an existing log file.
	FileModeAppend FileMode = "append"
	// FileModeTruncate truncates an existing log file.
	FileModeTruncate FileMode = "truncate"
	// FileModeRotate rotates the log file as it grows.
	FileModeRotate FileMode = "rotate"
)

func (m *FileMode) Set(s string) error {
	switch FileMode(s) {
	case FileModeAppend, FileModeTruncate, FileModeRotate:
		*m = FileMode(s)
	case "":
		*m = FileModeAppend
	default:
		return fmt.Errorf("invalid file mode: %s", s)
	}
	return nil
}

func (m FileMode) String() string {
	return string(m)
}

type Flags struct {
	DevMode bool
	Level   zapcore.Level
	Mode    FileMode
	Path    string
	logger  *zap.Logger
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.DevMode, "log.devmode", false, "development mode (if enabled dpanic level logs will cause a panic)")
	f.Level = zap.WarnLevel
	fs.Var(&f.Level, "log.level", "logging level")
	fs.StringVar(&f.Path, "log.path", "stderr", "path to send logs (values: stderr, stdout, path in file system)")
	f.Mode = FileModeAppend
	fs.Var(&f.Mode, "log.filemode", "logger file write mode (values: append, truncate, rotate)")
}

// Init opens the logger described by the flags.
func (f *Flags) Init() error {
	logger, err := f.Open()
	if err != nil {
		return err
	}
	f.logger = logger
	return nil
}

// Logger returns the logger opened by Init or a no-op logger if Init has
// not been called.
func (f *Flags) Logger() *zap.Logger {
	if f.logger == nil {
		return zap.NewNop()
	}
	return f.logger
}

func (f *Flags) Open() (*zap.Logger, error) {
	ws, err := openFile(f.Path, f.Mode)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionEncoderConfig()
	var opts []zap.Option
	if f.DevMode {
		config = zap.NewDevelopmentEncoderConfig()
		opts = append(opts, zap.Development())
	}
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(config), ws, f.Level)
	return zap.New(core, opts...), nil
}

func openFile(path string, mode FileMode) (zapcore.WriteSyncer, error) {
	switch path {
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "stderr", "":
		return zapcore.Lock(os.Stderr), nil
	case "/dev/null":
		return zapcore.AddSync(io.Discard), nil
	}
	switch mode {
	case FileModeRotate:
		if _, err := os.Stat(filepath.Dir(path)); err != nil {
			return nil, err
		}
		// lumberjack.Logger is safe for concurrent use so it needs no lock.
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}), nil
	case FileModeTruncate:
		return os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	default:
		return os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	}
}
