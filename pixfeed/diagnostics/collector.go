package diagnostics

// Collector is an ordered, append-only list of diagnostics. It is owned by a
// single transform call and is not safe for concurrent use.
type Collector struct {
	items []Diagnostic
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic.
func (c *Collector) Add(severity Severity, kind Kind, code Code, location string) {
	c.items = append(c.items, Diagnostic{Severity: severity, Kind: kind, Code: code, Location: location})
}

// AddDetail appends a diagnostic carrying the offending value.
func (c *Collector) AddDetail(severity Severity, kind Kind, code Code, location, detail string) {
	c.items = append(c.items, Diagnostic{Severity: severity, Kind: kind, Code: code, Location: location, Detail: detail})
}

func (c *Collector) MandatoryMissing(code Code, location string) {
	c.Add(Error, MandatoryElementMissing, code, location)
}

func (c *Collector) RequiredMissing(code Code, location string) {
	c.Add(Warning, RequiredElementMissing, code, location)
}

func (c *Collector) Vocabulary(code Code, detail string) {
	c.AddDetail(Error, VocabularyIssue, code, "", detail)
}

func (c *Collector) NotImplemented(code Code, element string) {
	c.AddDetail(Warning, NotImplementedElement, code, "", element)
}

// HasError reports whether any Error severity diagnostic has been recorded.
func (c *Collector) HasError() bool {
	for _, d := range c.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Count returns the number of diagnostics with the given severity.
func (c *Collector) Count(severity Severity) int {
	n := 0
	for _, d := range c.items {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

func (c *Collector) Len() int {
	return len(c.items)
}

// Items returns a copy of the diagnostics in the order they were added.
func (c *Collector) Items() []Diagnostic {
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}
