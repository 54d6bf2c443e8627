package store

import (
	"context"
	"errors"
	"testing"
)

func TestReplay_Clean(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	rec := aceticRecord(t)

	if _, err := s.WriteRun(ctx, rec); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}

	res, err := s.Replay(ctx, rec.Token)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !res.Clean() {
		t.Errorf("replay of untouched run not clean: hash_match=%v divergences=%d",
			res.HashMatch, len(res.Divergences))
	}
	if res.Samples != len(rec.Samples) {
		t.Errorf("Samples = %d, want %d", res.Samples, len(rec.Samples))
	}
}

func TestReplay_DetectsTamperedSample(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	rec := aceticRecord(t)

	if _, err := s.WriteRun(ctx, rec); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}

	_, err := s.DB().Exec(
		"UPDATE samples SET ph = ph + 0.001 WHERE run_token = ? AND seq = 3",
		rec.Token)
	if err != nil {
		t.Fatalf("tamper update: %v", err)
	}

	res, err := s.Replay(ctx, rec.Token)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Clean() {
		t.Fatal("replay did not flag a tampered sample")
	}
	if len(res.Divergences) != 1 {
		t.Fatalf("got %d divergences, want 1", len(res.Divergences))
	}
	d := res.Divergences[0]
	if d.Seq != 3 {
		t.Errorf("divergent seq = %d, want 3", d.Seq)
	}
	if d.Stored == d.Got {
		t.Error("divergence reports identical stored and recomputed values")
	}
	if !res.HashMatch {
		t.Error("hash mismatch reported, parameters were not touched")
	}
}

func TestReplay_DetectsTamperedParams(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	rec := aceticRecord(t)

	if _, err := s.WriteRun(ctx, rec); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}

	if _, err := s.DB().Exec(
		"UPDATE runs SET p_ka = 5.0 WHERE token = ?", rec.Token); err != nil {
		t.Fatalf("tamper update: %v", err)
	}

	res, err := s.Replay(ctx, rec.Token)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.HashMatch {
		t.Error("hash matched after parameter tampering")
	}
	if len(res.Divergences) == 0 {
		t.Error("changed pKa produced no sample divergences")
	}
}

func TestReplay_MissingRun(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Replay(context.Background(), "absent")
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("error = %v, want ErrRunNotFound", err)
	}
}
