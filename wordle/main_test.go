package wordle

import (
	"testing"

	"go.uber.org/goleak"
)

// Suggest and Observe fan out to goroutines, none may outlive the call.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
