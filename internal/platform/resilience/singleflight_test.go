package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("table:61:kz:standings", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_ForgetStartsFreshCall(t *testing.T) {
	var g SingleFlight
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = g.Do("k", func() (any, error) {
			close(started)
			<-release
			return "old", nil
		})
	}()
	<-started
	if !g.InFlight("k") {
		t.Fatalf("expected key in flight")
	}

	g.Forget("k")
	v, err, shared := g.Do("k", func() (any, error) { return "new", nil })
	close(release)
	if err != nil || v != "new" || shared {
		t.Fatalf("expected a fresh unshared call, got v=%v err=%v shared=%v", v, err, shared)
	}
}
