package http

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowAndRefill(t *testing.T) {

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(2, time.Minute, func() time.Time { return now })

	for i := 0; i < 2; i++ {
		if ok, _ := rl.Allow("1.2.3.4"); !ok {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	ok, retry := rl.Allow("1.2.3.4")
	if ok {
		t.Fatalf("third request should be rejected")
	}
	if retry != time.Minute {
		t.Errorf("expected retry after 1m, got %s", retry)
	}

	if ok, _ := rl.Allow("5.6.7.8"); !ok {
		t.Errorf("other clients have their own bucket")
	}

	now = now.Add(time.Minute)
	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Errorf("bucket should refill after the window")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, time.Minute, func() time.Time { return now })

	rl.Allow("1.2.3.4")
	now = now.Add(2 * time.Hour)
	rl.cleanup()

	if len(rl.clients) != 0 {
		t.Errorf("expected idle buckets to be removed, got %d", len(rl.clients))
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {

	rl := NewRateLimiter(1, time.Minute)

	rl.Stop()
	rl.Stop()
}

func TestRateLimiter_CleanupKeepsBucketsInsideLongWindow(t *testing.T) {

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, 2*time.Hour, func() time.Time { return now })

	rl.Allow("1.2.3.4")
	now = now.Add(90 * time.Minute)
	rl.cleanup()

	if ok, _ := rl.Allow("1.2.3.4"); ok {
		t.Errorf("cleanup must not reset a bucket whose window is still open")
	}

	now = now.Add(3 * time.Hour)
	rl.cleanup()

	if len(rl.clients) != 0 {
		t.Errorf("expected the bucket to be dropped after the window, got %d", len(rl.clients))
	}
}
