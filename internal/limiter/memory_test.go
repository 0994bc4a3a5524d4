package limiter

import (
	"context"
	"testing"
	"time"
)

func TestMemory_BlocksAfterMaxFailsAndResets(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemory(time.Minute, 3, 10*time.Minute)
	l.now = func() time.Time { return now }
	ip := HashIP("10.0.0.1:5000")

	for i := 0; i < 2; i++ {
		if blocked, _, _ := l.Failure(ctx, subj, ip); blocked {
			t.Fatalf("blocked too early at %d", i)
		}
	}
	blocked, dur, err := l.Failure(ctx, subj, ip)
	if err != nil || !blocked || dur != 10*time.Minute {
		t.Fatalf("want block: blocked=%v dur=%v err=%v", blocked, dur, err)
	}
	if ok, _, _ := l.Allow(ctx, subj, ip); ok {
		t.Fatalf("must deny while blocked")
	}
	if ok, _, _ := l.Allow(ctx, "other", ip); !ok {
		t.Fatalf("other subject must stay allowed")
	}

	now = now.Add(11 * time.Minute)
	if ok, _, _ := l.Allow(ctx, subj, ip); !ok {
		t.Fatalf("must allow after block expiry")
	}

	_ = l.Success(ctx, subj, ip)
	if blocked, _, _ := l.Failure(ctx, subj, ip); blocked {
		t.Fatalf("success must reset counters")
	}
}

func TestMemory_WindowExpiryRestartsCount(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemory(time.Minute, 2, time.Minute)
	l.now = func() time.Time { return now }

	_, _, _ = l.Failure(ctx, subj, nil)
	now = now.Add(2 * time.Minute)
	if blocked, _, _ := l.Failure(ctx, subj, nil); blocked {
		t.Fatalf("stale failure must not count")
	}
}
