package models

import "fmt"

// StatusType is the canonical status vocabulary.
type StatusType uint8

const (
	StatusUnknown StatusType = iota
	StatusNew
	StatusActive
	StatusCompleted
	StatusCancelled
	StatusAborted
	StatusNullified
	StatusObsolete
)

var statusNames = map[StatusType]string{
	StatusUnknown:   "Unknown",
	StatusNew:       "New",
	StatusActive:    "Active",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
	StatusAborted:   "Aborted",
	StatusNullified: "Nullified",
	StatusObsolete:  "Obsolete",
}

func (s StatusType) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StatusType(%d)", uint8(s))
}

func (s StatusType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *StatusType) UnmarshalText(text []byte) error {
	for k, v := range statusNames {
		if v == string(text) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}
