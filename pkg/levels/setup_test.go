package levels

import (
	"os"
	"testing"

	"new-haven-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Silence()
	os.Exit(m.Run())
}
