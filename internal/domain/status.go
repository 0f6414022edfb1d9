package domain

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// StatusLabel is one of the per-video tracking labels.
type StatusLabel string

const (
	StatusUnwatched StatusLabel = "unwatched"
	StatusWatched   StatusLabel = "watched"
	StatusPractice  StatusLabel = "practice"
	StatusSaved     StatusLabel = "saved"
)

// ParseStatusLabel validates a raw label value.
func ParseStatusLabel(s string) (StatusLabel, error) {
	switch StatusLabel(s) {
	case StatusUnwatched, StatusWatched, StatusPractice, StatusSaved:
		return StatusLabel(s), nil
	}
	return "", fmt.Errorf("%w: unknown status label %q", ErrInvalidInput, s)
}

// StatusAction says whether a label is being added to or removed from a set.
type StatusAction string

const (
	ActionAdd    StatusAction = "add"
	ActionRemove StatusAction = "remove"
)

// ParseStatusAction validates a raw action value.
func ParseStatusAction(s string) (StatusAction, error) {
	switch StatusAction(s) {
	case ActionAdd, ActionRemove:
		return StatusAction(s), nil
	}
	return "", fmt.Errorf("%w: unknown status action %q", ErrInvalidInput, s)
}

// StatusSet is the set of labels attached to a video, kept in insertion order
// so stored documents stay stable across edits. Invariant: "unwatched" never
// coexists with any other label.
//
// Stored documents predate the set representation and may hold a bare string;
// the decoders below normalize those to a singleton set on read.
type StatusSet []StatusLabel

// NewStatusSet builds a set from the given labels, dropping duplicates.
func NewStatusSet(labels ...StatusLabel) StatusSet {
	s := StatusSet{}
	for _, l := range labels {
		if !s.Contains(l) {
			s = append(s, l)
		}
	}
	return s
}

// Unwatched is the default status for a freshly imported video.
func Unwatched() StatusSet { return StatusSet{StatusUnwatched} }

func (s StatusSet) Contains(label StatusLabel) bool {
	for _, l := range s {
		if l == label {
			return true
		}
	}
	return false
}

func (s StatusSet) Clone() StatusSet {
	out := make(StatusSet, len(s))
	copy(out, s)
	return out
}

// Apply reconciles one add/remove mutation into the set and returns the
// result, leaving the receiver untouched.
//
// Adding any label other than "unwatched" strips "unwatched" first; adding a
// label already present is a no-op, as is removing an absent one. Removing the
// last label leaves an empty set rather than falling back to "unwatched".
func (s StatusSet) Apply(label StatusLabel, action StatusAction) StatusSet {
	out := s.Clone()
	switch action {
	case ActionAdd:
		if label != StatusUnwatched {
			out = out.without(StatusUnwatched)
		}
		if !out.Contains(label) {
			out = append(out, label)
		}
	case ActionRemove:
		out = out.without(label)
	}
	return out
}

func (s StatusSet) without(label StatusLabel) StatusSet {
	out := s[:0:0]
	for _, l := range s {
		if l != label {
			out = append(out, l)
		}
	}
	if out == nil {
		out = StatusSet{}
	}
	return out
}

// MarshalJSON always emits an array, never null, so clients see `[]` for a
// video whose last label was removed.
func (s StatusSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]StatusLabel(s))
}

// UnmarshalJSON accepts both the current array form and the legacy bare
// string form ("unwatched" -> ["unwatched"]).
func (s *StatusSet) UnmarshalJSON(data []byte) error {
	var labels []StatusLabel
	if err := json.Unmarshal(data, &labels); err == nil {
		*s = NewStatusSet(labels...)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = StatusSet{}
		} else {
			*s = StatusSet{StatusLabel(single)}
		}
		return nil
	}
	return fmt.Errorf("status: expected string or array, got %s", string(data))
}

// UnmarshalBSONValue is the migration-on-read adapter for documents written
// before status became an array.
func (s *StatusSet) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		var single string
		if err := raw.Unmarshal(&single); err != nil {
			return err
		}
		if single == "" {
			*s = StatusSet{}
		} else {
			*s = StatusSet{StatusLabel(single)}
		}
		return nil
	case bsontype.Array:
		var labels []StatusLabel
		if err := raw.Unmarshal(&labels); err != nil {
			return err
		}
		*s = NewStatusSet(labels...)
		return nil
	case bsontype.Null, bsontype.Undefined:
		*s = StatusSet{}
		return nil
	}
	return fmt.Errorf("status: cannot decode BSON type %s", t)
}
