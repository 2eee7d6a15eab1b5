package timex

import (
	"testing"
	"time"
)

func TestNowMs(t *testing.T) {
	a := NowMs()
	time.Sleep(2 * time.Millisecond)
	if b := NowMs(); b <= a {
		t.Fatalf("NowMs not advancing: %d then %d", a, b)
	}
}
