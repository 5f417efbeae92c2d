package metrics

import "errors"

// MultiSink fans records out to several sinks, collecting errors.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordAssignment(rec AssignmentRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordAssignment(rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordCheck(rec CheckRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordCheck(rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
