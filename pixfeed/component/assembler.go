// Package component assembles a canonical registration event from a decoded
// HL7v3 registration control-act.
package component

import (
	"time"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/CMSgov/pixfeed-app/log"
	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
	"github.com/CMSgov/pixfeed-app/pixfeed/models"
	"github.com/CMSgov/pixfeed-app/pixfeed/terminology"
)

// Options carries the collaborators of an Assembler. Translator and Registrar
// are required. Clock, NewID and Logger default to the wall clock, random
// UUIDs and the transform logger.
type Options struct {
	Translator terminology.Translator
	Registrar  Registrar
	Clock      func() time.Time
	NewID      func() string
	Logger     logrus.FieldLogger
}

// Assembler holds no per-message state and may be shared between goroutines
// as long as its collaborators are safe for concurrent reads.
type Assembler struct {
	codes CodeTranslator
	opts  Options
}

func NewAssembler(opts Options) (*Assembler, error) {
	if opts.Translator == nil {
		return nil, errors.New("component: a terminology translator is required")
	}
	if opts.Registrar == nil {
		return nil, errors.New("component: a registrar is required")
	}
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.New
	}
	if opts.Logger == nil {
		opts.Logger = log.Transform
	}
	return &Assembler{
		codes: CodeTranslator{Translator: opts.Translator, Registrar: opts.Registrar},
		opts:  opts,
	}, nil
}

type state uint8

const (
	stateStart state = iota
	stateControlActValidated
	stateSubjectResolved
	stateDemographicsBuilt
	stateFinalGate
	stateProduced
	stateRejected
)

var stateNames = map[state]string{
	stateStart:               "Start",
	stateControlActValidated: "ControlActValidated",
	stateSubjectResolved:     "SubjectResolved",
	stateDemographicsBuilt:   "DemographicsBuilt",
	stateFinalGate:           "FinalGate",
	stateProduced:            "Produced",
	stateRejected:            "Rejected",
}

func (s state) String() string {
	return stateNames[s]
}

// builder is the private state of one Assemble call.
type builder struct {
	*Assembler
	diags  *diagnostics.Collector
	now    time.Time
	logger logrus.FieldLogger
	state  state

	event   *models.RegistrationEvent
	summary *models.ChangeSummary
	subject *message.RegistrationEvent
	person  *models.Person
}

// Assemble converts act into a registration event. The event is nil when any
// Error diagnostic was recorded; the diagnostics are always returned in the
// order they were found.
func (a *Assembler) Assemble(act *message.ControlActProcess) (*models.RegistrationEvent, []diagnostics.Diagnostic) {
	b := &builder{
		Assembler: a,
		diags:     diagnostics.NewCollector(),
		now:       a.opts.Clock(),
		logger:    a.opts.Logger,
	}

	event := b.run(act)
	b.logger.WithFields(logrus.Fields{
		"state":    b.state.String(),
		"errors":   b.diags.Count(diagnostics.Error),
		"warnings": b.diags.Count(diagnostics.Warning),
	}).Info("Registration transform finished")

	return event, b.diags.Items()
}

func (b *builder) run(act *message.ControlActProcess) *models.RegistrationEvent {
	if act == nil {
		act = &message.ControlActProcess{}
	}

	b.controlAct(act)
	b.transition(stateControlActValidated)

	if !b.resolveSubject(act) {
		return b.reject()
	}
	b.transition(stateSubjectResolved)

	if !b.demographics() {
		return b.reject()
	}
	b.transition(stateDemographicsBuilt)

	b.transition(stateFinalGate)
	if b.diags.HasError() {
		return b.reject()
	}
	b.transition(stateProduced)
	return b.event
}

func (b *builder) transition(s state) {
	b.logger.Debugf("Registration transform %s -> %s", b.state, s)
	b.state = s
}

func (b *builder) reject() *models.RegistrationEvent {
	b.transition(stateRejected)
	return nil
}

func (b *builder) newID() string {
	return b.opts.NewID()
}
