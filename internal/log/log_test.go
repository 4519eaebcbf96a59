// Public domain.

package log

import "testing"

func TestInit(t *testing.T) {
	for _, debug := range []bool{true, false} {
		if err := Init(debug); err != nil {
			t.Fatalf("Init(%v): %v", debug, err)
		}
		if Logger() == nil {
			t.Fatalf("Init(%v): nil logger", debug)
		}
	}
	Debugw("debug", "k", 1)
	Infow("info", "k", 2)
}

func TestLoggerFallback(t *testing.T) {
	log = nil
	if Logger() == nil {
		t.Fatal("no fallback logger")
	}
	log = nil
	Warnw("warn without Init", "k", 3)
	log = nil
	Errorw("error without Init", "k", 4)
	Sync()
}
