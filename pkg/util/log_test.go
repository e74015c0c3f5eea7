package util

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLogLevel(t *testing.T) {
	defer Logger.SetLevel(logrus.WarnLevel)

	if err := SetLogLevel("debug"); err != nil {
		t.Fatalf("SetLogLevel(debug) failed: %v", err)
	}
	if Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Logger.GetLevel())
	}

	if err := SetLogLevel("nonsense"); err == nil {
		t.Error("SetLogLevel with invalid level should fail")
	}
}

func TestWithEntity(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	WithEntity("manufacturer").Warn("created")

	if !strings.Contains(buf.String(), "entity=manufacturer") {
		t.Errorf("log output missing entity field: %q", buf.String())
	}
}
