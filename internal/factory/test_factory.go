package factory

import (
	"time"

	"github.com/mcoot/rebirth/internal/catalog"
	"github.com/mcoot/rebirth/internal/dependencies/mocks"
	"github.com/mcoot/rebirth/internal/storage/memory"
	"github.com/mcoot/rebirth/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MemoryStore *memory.Storage
}

// NewTestApp creates an App backed by memory storage with mocked clock and
// random source. The clock starts at noon UTC on 2024-01-01 and resets run
// at UTC midnight.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, catalog.Default(), time.UTC, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MemoryStore: store,
	}
}
