package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestApply_AddRemovesUnwatched(t *testing.T) {
	s := Unwatched()

	got := s.Apply(StatusPractice, ActionAdd)

	assert.Equal(t, StatusSet{StatusPractice}, got)
	assert.Equal(t, Unwatched(), s, "Apply must not mutate the receiver")
}

func TestApply_AddUnwatchedKeepsUnwatchedOnly(t *testing.T) {
	s := StatusSet{}

	got := s.Apply(StatusUnwatched, ActionAdd)

	assert.Equal(t, StatusSet{StatusUnwatched}, got)
}

func TestApply_AddIsIdempotent(t *testing.T) {
	s := Unwatched()

	once := s.Apply(StatusWatched, ActionAdd)
	twice := once.Apply(StatusWatched, ActionAdd)

	assert.Equal(t, once, twice)
}

func TestApply_RemoveAbsentLabelIsNoOp(t *testing.T) {
	s := StatusSet{StatusWatched}

	got := s.Apply(StatusSaved, ActionRemove)

	assert.Equal(t, StatusSet{StatusWatched}, got)
}

func TestApply_RemoveLastLabelLeavesEmptySet(t *testing.T) {
	s := StatusSet{StatusPractice}

	got := s.Apply(StatusPractice, ActionRemove)

	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.False(t, got.Contains(StatusUnwatched), "no implicit fallback to unwatched")
}

func TestApply_MultiLabelScenario(t *testing.T) {
	// {practice} -> add watched -> {practice, watched} -> remove practice -> {watched}
	s := StatusSet{StatusPractice}

	s = s.Apply(StatusWatched, ActionAdd)
	assert.ElementsMatch(t, StatusSet{StatusPractice, StatusWatched}, s)

	s = s.Apply(StatusPractice, ActionRemove)
	assert.Equal(t, StatusSet{StatusWatched}, s)
}

func TestApply_MutualExclusionInvariant(t *testing.T) {
	labels := []StatusLabel{StatusUnwatched, StatusWatched, StatusPractice, StatusSaved}
	actions := []StatusAction{ActionAdd, ActionRemove}

	s := Unwatched()
	// Walk every label/action pair a few times over; the invariant must
	// hold after each step.
	for round := 0; round < 3; round++ {
		for _, l := range labels {
			for _, a := range actions {
				s = s.Apply(l, a)
				if s.Contains(StatusUnwatched) {
					assert.Len(t, s, 1, "unwatched must never coexist with other labels: %v", s)
				}
			}
		}
	}
}

func TestParseStatusLabel(t *testing.T) {
	for _, valid := range []string{"unwatched", "watched", "practice", "saved"} {
		label, err := ParseStatusLabel(valid)
		require.NoError(t, err)
		assert.Equal(t, StatusLabel(valid), label)
	}

	_, err := ParseStatusLabel("favourite")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseStatusAction(t *testing.T) {
	for _, valid := range []string{"add", "remove"} {
		action, err := ParseStatusAction(valid)
		require.NoError(t, err)
		assert.Equal(t, StatusAction(valid), action)
	}

	_, err := ParseStatusAction("toggle")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStatusSetJSON_LegacySingleValue(t *testing.T) {
	var v Video
	err := json.Unmarshal([]byte(`{"id":"v1","status":"watched"}`), &v)

	require.NoError(t, err)
	assert.Equal(t, StatusSet{StatusWatched}, v.Status)
}

func TestStatusSetJSON_ArrayAndEmpty(t *testing.T) {
	var v Video
	err := json.Unmarshal([]byte(`{"id":"v1","status":["practice","saved"]}`), &v)
	require.NoError(t, err)
	assert.Equal(t, StatusSet{StatusPractice, StatusSaved}, v.Status)

	err = json.Unmarshal([]byte(`{"id":"v1","status":""}`), &v)
	require.NoError(t, err)
	assert.Empty(t, v.Status)
}

func TestStatusSetJSON_MarshalNilAsEmptyArray(t *testing.T) {
	out, err := json.Marshal(Video{ID: "v1"})

	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":[]`)
}

func TestStatusSetBSON_LegacySingleValue(t *testing.T) {
	// Documents written before the set migration hold a bare string.
	raw, err := bson.Marshal(bson.M{"id": "v1", "status": "practice"})
	require.NoError(t, err)

	var v Video
	require.NoError(t, bson.Unmarshal(raw, &v))
	assert.Equal(t, StatusSet{StatusPractice}, v.Status)
}

func TestStatusSetBSON_ArrayAndNull(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"id": "v1", "status": []string{"watched", "saved"}})
	require.NoError(t, err)

	var v Video
	require.NoError(t, bson.Unmarshal(raw, &v))
	assert.Equal(t, StatusSet{StatusWatched, StatusSaved}, v.Status)

	raw, err = bson.Marshal(bson.M{"id": "v1", "status": nil})
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(raw, &v))
	assert.Empty(t, v.Status)
}

func TestStatusSetBSON_RoundTrip(t *testing.T) {
	in := Video{ID: "v1", Status: StatusSet{StatusPractice, StatusWatched}}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var out Video
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, in.Status, out.Status)
}
