package log

import (
	"os"
	"path/filepath"

	"github.com/CMSgov/pixfeed-app/conf"
	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/sirupsen/logrus"
)

var (
	Transform   logrus.FieldLogger
	Terminology logrus.FieldLogger
	CLI         logrus.FieldLogger
)

func init() {
	SetupLoggers()
}

// SetupLoggers rebuilds the package loggers from the current configuration.
func SetupLoggers() {
	Transform = logger(logrus.New(), conf.GetEnv("PIXFEED_TRANSFORM_LOG"), "transform")
	Terminology = logger(logrus.New(), conf.GetEnv("PIXFEED_TERMINOLOGY_LOG"), "terminology")
	CLI = logger(logrus.New(), conf.GetEnv("PIXFEED_CLI_LOG"), "cli")
}

func logger(l *logrus.Logger, outputFile, application string) logrus.FieldLogger {
	l.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(conf.GetEnv("PIXFEED_LOG_LEVEL")); err == nil {
		l.SetLevel(level)
	}
	return Logger(l, outputFile, application, conf.GetEnv("DEPLOYMENT_TARGET"))
}

// Logger points l at outputFile (stderr when empty or unwritable) and stamps
// the common fields.
func Logger(l *logrus.Logger, outputFile string,
	application, environment string) logrus.FieldLogger {

	if outputFile != "" {
		if file, err := os.OpenFile(filepath.Clean(outputFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err == nil {
			l.SetOutput(file)
		} else {
			l.Infof("Failed to open output file %s. Will use stderr. %s",
				outputFile, err.Error())
		}
	}

	return l.WithFields(logrus.Fields{
		"application": application,
		"environment": environment,
		"source_app":  constants.AppName,
		"version":     constants.Version,
	})
}
