package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options describes where and how much to log
type Options struct {
	// Filename enables a rotated log file in addition to the console when set
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Level      zapcore.Level
}

// discards everything until Init is called
var log = zap.NewNop().Sugar()

// file is the rotated log file, if any, so Close can release it
var file io.Closer

// Init initializes the logger after the config file has been read. Console
// output goes to stdout.
func Init(opts Options) {
	InitWriter(os.Stdout, opts)
}

// InitWriter is Init with the console output sent to w
func InitWriter(w io.Writer, opts Options) {
	var core zapcore.Core

	consoleEncoderConfig := zapcore.EncoderConfig{
		TimeKey:      "time",
		LevelKey:     "level",
		CallerKey:    "caller",
		MessageKey:   "message",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalColorLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncoderConfig)

	consoleWriter := zapcore.AddSync(w)

	Close()

	if opts.Filename != "" {
		lumberjackLogger := &lumberjack.Logger{
			Filename:   opts.Filename,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
		}
		file = lumberjackLogger

		fileEncoderConfig := consoleEncoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		fileEncoder := zapcore.NewConsoleEncoder(fileEncoderConfig)

		fileWriter := zapcore.AddSync(lumberjackLogger)

		// create a new zapcore using both outputs
		core = zapcore.NewTee(
			zapcore.NewCore(consoleEncoder, consoleWriter, opts.Level),
			zapcore.NewCore(fileEncoder, fileWriter, opts.Level),
		)
	} else {
		core = zapcore.NewCore(consoleEncoder, consoleWriter, opts.Level)
	}

	// Create a Sugared Logger from the core
	if opts.Level == zapcore.DebugLevel {
		// add caller if debug level
		log = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	} else {
		log = zap.New(core).Sugar()
	}
}

// Close flushes buffered entries and releases the log file
func Close() {
	_ = log.Sync()
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

func Debugf(template string, args ...any) {
	log.Debugf(template, args...)
}

func Debugln(args ...any) {
	log.Debugln(args...)
}

func Infof(template string, args ...any) {
	log.Infof(template, args...)
}

func Infoln(args ...any) {
	log.Infoln(args...)
}

func Warnf(template string, args ...any) {
	log.Warnf(template, args...)
}

func Warnln(args ...any) {
	log.Warnln(args...)
}

func Errorf(template string, args ...any) {
	log.Errorf(template, args...)
}

// Fatalf logs then exits with status 1
func Fatalf(template string, args ...any) {
	log.Fatalf(template, args...)
}
