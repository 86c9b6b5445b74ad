package models

import "time"

type RegistrationEventType string

const (
	EventRegister  RegistrationEventType = "Register"
	EventRevise    RegistrationEventType = "Revise"
	EventNullify   RegistrationEventType = "Nullify"
	EventDuplicate RegistrationEventType = "Duplicate"
)

// RegistrationEvent is the root of the canonical registration graph. It owns
// every child attached through its edges.
type RegistrationEvent struct {
	Container
	EventClassifier RegistrationEventType `json:"eventClassifier"`
	EventType       CodeValue             `json:"eventType"`
	Status          StatusType            `json:"status"`
	LanguageCode    string                `json:"languageCode,omitempty"`
	EffectiveTime   *TimestampSet         `json:"effectiveTime,omitempty"`
	Timestamp       time.Time             `json:"timestamp"`
	Extensions      ExtendedAttributes    `json:"extensions"`
}

func (*RegistrationEvent) ComponentType() string { return "RegistrationEvent" }

// Subject returns the person attached with SubjectOf.
func (r *RegistrationEvent) Subject() *Person {
	for _, c := range r.Children(RoleSubjectOf) {
		if p, ok := c.(*Person); ok {
			return p
		}
	}
	return nil
}

// ChangeSummary records the control-act that caused the registration.
type ChangeSummary struct {
	Container
	ChangeType    CodeValue     `json:"changeType"`
	Status        StatusType    `json:"status"`
	Timestamp     time.Time     `json:"timestamp"`
	LanguageCode  string        `json:"languageCode,omitempty"`
	EffectiveTime *TimestampSet `json:"effectiveTime,omitempty"`
}

func (*ChangeSummary) ComponentType() string { return "ChangeSummary" }

type Reason struct {
	ReasonType CodeValue `json:"reasonType"`
}

func (*Reason) ComponentType() string { return "Reason" }
