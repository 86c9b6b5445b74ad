package pixfeedcli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/mattn/go-colorable"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/CMSgov/pixfeed-app/log"
	"github.com/CMSgov/pixfeed-app/pixfeed/component"
	"github.com/CMSgov/pixfeed-app/pixfeed/constants"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
	"github.com/CMSgov/pixfeed-app/pixfeed/message/gen"
	"github.com/CMSgov/pixfeed-app/pixfeed/metrics"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
	"github.com/CMSgov/pixfeed-app/pixfeed/models/fhir"
	"github.com/CMSgov/pixfeed-app/pixfeed/registrar"
	"github.com/CMSgov/pixfeed-app/pixfeed/responseutils"
	"github.com/CMSgov/pixfeed-app/pixfeed/terminology"
)

// App Name and usage.  Edit them here to prevent breaking tests
const Name = "pixfeed"
const Usage = "Patient registration feed CLI"

// ErrRejected is returned by transform when the registration produced Error
// diagnostics.
var ErrRejected = errors.New("registration rejected")

// Collaborators are resolved once per command. Tests replace them.
var (
	loadRegistrar  = registrar.LoadConfig
	loadTranslator = func(ctx context.Context, systems terminology.SystemResolver) (terminology.Translator, error) {
		cfg, err := terminology.LoadConfig()
		if err != nil {
			return nil, err
		}
		return terminology.NewFromConfig(ctx, cfg, systems)
	}
)

func GetApp() *cli.App {
	return setUpApp()
}

func setUpApp() *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Usage = Usage
	app.Version = constants.Version
	app.Writer = colorable.NewColorableStdout()
	app.ErrWriter = colorable.NewColorableStderr()

	var filePath, outPath, metricsPath, code, from, to, dir string
	var asFHIR bool
	var count int
	app.Commands = []cli.Command{
		{
			Name:     "transform",
			Category: "Registration",
			Usage:    "Transform a registration control act into a canonical registration event",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "file",
					Usage:       "Path of the JSON encoded control act",
					Destination: &filePath,
				},
				cli.StringFlag{
					Name:        "out",
					Usage:       "Path to write the result to (defaults to stdout)",
					Destination: &outPath,
				},
				cli.BoolFlag{
					Name:        "fhir",
					Usage:       "Write a FHIR R4 bundle holding the Patient and an OperationOutcome",
					Destination: &asFHIR,
				},
				cli.StringFlag{
					Name:        "metrics-file",
					Usage:       "Path of a prometheus textfile to write counters to",
					Destination: &metricsPath,
				},
			},
			Action: func(c *cli.Context) error {
				if filePath == "" {
					return errors.New("--file is required")
				}
				return transform(context.Background(), app.Writer, transformOptions{
					file:        filePath,
					out:         outPath,
					fhir:        asFHIR,
					metricsFile: metricsPath,
				})
			},
		},
		{
			Name:     "translate",
			Category: "Terminology",
			Usage:    "Translate a code with the configured terminology chain",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "code",
					Usage:       "Code to translate",
					Destination: &code,
				},
				cli.StringFlag{
					Name:        "from",
					Usage:       "Source code system name (e.g. ISO639-3) or identifier",
					Destination: &from,
				},
				cli.StringFlag{
					Name:        "to",
					Usage:       "Target code system name (e.g. ISO639-1) or identifier",
					Destination: &to,
				},
			},
			Action: func(c *cli.Context) error {
				return translate(context.Background(), app.Writer, code, from, to)
			},
		},
		{
			Name:     "generate",
			Category: "Data import tools",
			Usage:    "Generate synthetic registration control acts",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:        "count",
					Usage:       "Number of control acts to generate",
					Value:       10,
					Destination: &count,
				},
				cli.StringFlag{
					Name:        "out",
					Usage:       "Directory to write the control acts to",
					Destination: &dir,
				},
			},
			Action: func(c *cli.Context) error {
				if dir == "" {
					return errors.New("--out is required")
				}
				paths, err := gen.WriteFiles(dir, count, time.Now().UTC())
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Writer, "Generated %d control acts in %s\n", len(paths), dir)
				return nil
			},
		},
	}
	return app
}

type transformOptions struct {
	file        string
	out         string
	fhir        bool
	metricsFile string
}

// transformResult is the plain JSON output of the transform command.
type transformResult struct {
	Registration *models.RegistrationEvent `json:"registration"`
	Diagnostics  []diagnostics.Diagnostic  `json:"diagnostics"`
}

func transform(ctx context.Context, stdout io.Writer, opts transformOptions) error {
	act, err := readControlAct(opts.file)
	if err != nil {
		return err
	}

	ctx = log.NewContext(ctx, log.CLI)
	ctx, logger := log.SetLoggerFields(ctx, logrus.Fields{
		"message_id":    messageID(act),
		"trigger_event": act.Code.Code,
	})

	registry, err := loadRegistrar()
	if err != nil {
		return errors.Wrap(err, "failed to load code system registry")
	}
	translator, err := loadTranslator(ctx, registry)
	if err != nil {
		return errors.Wrap(err, "failed to build terminology chain")
	}

	assembler, err := component.NewAssembler(component.Options{
		Translator: translator,
		Registrar:  registry,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	event, diags := assembler.Assemble(act)
	elapsed := time.Since(start)

	if opts.metricsFile != "" {
		m := metrics.New()
		m.ObserveTransform(event != nil, diags, elapsed)
		if err := m.WriteToTextfile(opts.metricsFile); err != nil {
			return err
		}
	}

	w, closeOut, err := output(stdout, opts.out)
	if err != nil {
		return err
	}
	defer closeOut()

	if opts.fhir {
		err = writeFHIR(w, event, diags)
	} else {
		err = writeJSON(w, event, diags)
	}
	if err != nil {
		return err
	}

	if event == nil {
		logger.Warnf("Registration rejected with %d errors", countErrors(diags))
		return errors.Wrapf(ErrRejected, "%d error diagnostics", countErrors(diags))
	}
	logger.Infof("Registration %s produced", event.ID)
	return nil
}

func readControlAct(path string) (*message.ControlActProcess, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read file %s", path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.CLI.Warnf("Failed to close file %s", err.Error())
		}
	}()
	return message.Decode(f)
}

// messageID uses the first registration id, falling back to a fresh uuid.
func messageID(act *message.ControlActProcess) string {
	if len(act.Subjects) > 0 && act.Subjects[0].RegistrationEvent != nil {
		for _, id := range act.Subjects[0].RegistrationEvent.IDs {
			if !id.IsNull() {
				return id.Root + "^" + id.Extension
			}
		}
	}
	return uuid.New()
}

func output(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s", path)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.CLI.Warnf("Failed to close file %s", err.Error())
		}
	}, nil
}

func writeJSON(w io.Writer, event *models.RegistrationEvent, diags []diagnostics.Diagnostic) error {
	if diags == nil {
		diags = []diagnostics.Diagnostic{}
	}
	data, err := json.MarshalIndent(transformResult{Registration: event, Diagnostics: diags}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode registration")
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeFHIR(w io.Writer, event *models.RegistrationEvent, diags []diagnostics.Diagnostic) error {
	rw, err := responseutils.NewResponseWriter(true)
	if err != nil {
		return err
	}
	bundle := responseutils.CreateBundle(fhir.Patient(event), responseutils.OperationOutcome(diags))
	if _, err := rw.WriteBundle(w, bundle); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func countErrors(diags []diagnostics.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity == diagnostics.Error {
			n++
		}
	}
	return n
}

func translate(ctx context.Context, w io.Writer, code, from, to string) error {
	if code == "" || from == "" || to == "" {
		return errors.New("--code, --from and --to are required")
	}

	registry, err := loadRegistrar()
	if err != nil {
		return errors.Wrap(err, "failed to load code system registry")
	}
	translator, err := loadTranslator(ctx, registry)
	if err != nil {
		return errors.Wrap(err, "failed to build terminology chain")
	}

	source, target := systemID(registry, from), systemID(registry, to)
	result, ok := translator.Translate(code, source, target)
	if !ok {
		return errors.Errorf("no translation for %s from %s to %s", code, source, target)
	}
	fmt.Fprintln(w, result)
	return nil
}

// systemID accepts either a registered name or a raw identifier.
func systemID(registry *registrar.Registry, name string) string {
	if id := registry.GetSystemID(name); id != "" {
		return id
	}
	return name
}
