package errmsg

import "digital.vasic.assertions/pkg/description"

// DoesNotContainExclusivelyMessage reports that a group did not
// contain exactly the expected values.
type DoesNotContainExclusivelyMessage struct {
	actual     []any
	expected   []any
	unexpected []any
	notFound   []any
}

// DoesNotContainExclusively creates the message for a group that
// is missing some expected values, holds values that were not
// expected, or both.
func DoesNotContainExclusively(
	actual, expected, unexpected, notFound []any,
) DoesNotContainExclusivelyMessage {
	return DoesNotContainExclusivelyMessage{
		actual:     snapshot(actual),
		expected:   snapshot(expected),
		unexpected: snapshot(unexpected),
		notFound:   snapshot(notFound),
	}
}

// Create implements ErrorMessage. Only the non-empty parts of the
// evidence are mentioned.
func (m DoesNotContainExclusivelyMessage) Create(
	d description.Description,
) string {
	switch {
	case len(m.notFound) > 0 && len(m.unexpected) > 0:
		return defaultFormatter.FormatMessage(
			"%sexpected:<%s> to contain:<%s> exclusively; "+
				"could not find:<%s> and got unexpected:<%s>",
			d, m.actual, m.expected, m.notFound, m.unexpected,
		)
	case len(m.unexpected) > 0:
		return defaultFormatter.FormatMessage(
			"%sexpected:<%s> to contain:<%s> exclusively, "+
				"but got unexpected:<%s>",
			d, m.actual, m.expected, m.unexpected,
		)
	case len(m.notFound) > 0:
		return defaultFormatter.FormatMessage(
			"%sexpected:<%s> to contain:<%s> exclusively, "+
				"but could not find:<%s>",
			d, m.actual, m.expected, m.notFound,
		)
	}
	return defaultFormatter.FormatMessage(
		"%sexpected:<%s> to contain:<%s> exclusively",
		d, m.actual, m.expected,
	)
}

// DoesNotContainSequenceMessage reports that a group did not hold
// a sequence of values as a contiguous run.
type DoesNotContainSequenceMessage struct {
	actual   []any
	sequence []any
}

// DoesNotContainSequence creates the message for a sequence that
// could not be found in actual.
func DoesNotContainSequence(
	actual, sequence []any,
) DoesNotContainSequenceMessage {
	return DoesNotContainSequenceMessage{
		actual:   snapshot(actual),
		sequence: snapshot(sequence),
	}
}

// Create implements ErrorMessage.
func (m DoesNotContainSequenceMessage) Create(
	d description.Description,
) string {
	return defaultFormatter.FormatMessage(
		"%sexpecting:<%s> to contain sequence:<%s>",
		d, m.actual, m.sequence,
	)
}

// DoesNotContainMessage reports expected values missing from a
// group.
type DoesNotContainMessage struct {
	actual   []any
	expected []any
	notFound []any
}

// DoesNotContain creates the message for values that could not be
// found in actual.
func DoesNotContain(
	actual, expected, notFound []any,
) DoesNotContainMessage {
	return DoesNotContainMessage{
		actual:   snapshot(actual),
		expected: snapshot(expected),
		notFound: snapshot(notFound),
	}
}

// Create implements ErrorMessage.
func (m DoesNotContainMessage) Create(d description.Description) string {
	return defaultFormatter.FormatMessage(
		"%sexpecting:<%s> to contain:<%s> but could not find:<%s>",
		d, m.actual, m.expected, m.notFound,
	)
}

// HasDuplicatesMessage reports values that occur more than once.
type HasDuplicatesMessage struct {
	actual     []any
	duplicates []any
}

// HasDuplicates creates the message for a group holding repeated
// values.
func HasDuplicates(actual, duplicates []any) HasDuplicatesMessage {
	return HasDuplicatesMessage{
		actual:     snapshot(actual),
		duplicates: snapshot(duplicates),
	}
}

// Create implements ErrorMessage.
func (m HasDuplicatesMessage) Create(d description.Description) string {
	return defaultFormatter.FormatMessage(
		"%sfound duplicate(s):<%s> in:<%s>",
		d, m.duplicates, m.actual,
	)
}
