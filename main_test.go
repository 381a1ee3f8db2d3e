package msgbuf

import (
	"go.uber.org/goleak"
	"testing"
)

// Sources never start goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
