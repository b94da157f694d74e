package engine

import (
	"os"
	"testing"

	"github.com/HenryFBP/wayward-close-da-door/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}
