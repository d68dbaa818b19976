package event

import (
	"context"
	"encoding/json"
	"testing"
)

func TestNewPublisherWithoutURLIsNoop(t *testing.T) {
	p, err := NewPublisher("", "aptiprep.events")
	if err != nil {
		t.Fatalf("NewPublisher: %v", err)
	}
	if _, ok := p.(NoopPublisher); !ok {
		t.Fatalf("publisher = %T, want NoopPublisher", p)
	}
	if err := p.Publish(context.Background(), AttemptSubmitted, AttemptSubmittedPayload{AttemptID: 1}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestEventEnvelope(t *testing.T) {
	evt := newEvent(LeaderboardUpdated, LeaderboardUpdatedPayload{TestID: 4, Rank: 1, Periods: []string{"all"}})
	if evt.ID == "" || evt.OccurredAt.IsZero() {
		t.Fatalf("envelope not stamped: %+v", evt)
	}

	body, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Type != "leaderboard.updated" || decoded.Payload["test_id"] != float64(4) {
		t.Fatalf("unexpected wire form %s", body)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_ = r.Publish(context.Background(), AttemptSubmitted, nil)
	_ = r.Publish(context.Background(), LeaderboardUpdated, nil)
	if got := r.Types(); len(got) != 2 || got[0] != AttemptSubmitted || got[1] != LeaderboardUpdated {
		t.Fatalf("Types() = %v", got)
	}
}
