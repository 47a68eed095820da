package factory

import (
	"time"

	"github.com/eternaldle/eternaldle-go/internal/dependencies/mocks"
	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/storage/memory"
	"github.com/eternaldle/eternaldle-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// LoadTestRoster loads a small roster for testing
func (t *TestApp) LoadTestRoster() error {
	characters := []model.Character{
		{Name: "Abigail", Gender: "Female", Classes: "Fighter", Range: "Melee", HairColor: "Gray", ReleaseYear: "2023", WeaponCount: 1, ImageURL: "https://example.com/abigail.png"},
		{Name: "Adela", Gender: "Female", Classes: "Mage,Support", Range: "Ranged", HairColor: "Black", ReleaseYear: "2021", WeaponCount: 2, ImageURL: "https://example.com/adela.png"},
		{Name: "Adina", Gender: "Female", Classes: "Mage", Range: "Ranged", HairColor: "Gray", ReleaseYear: "2022", WeaponCount: 1, ImageURL: "https://example.com/adina.png"},
		{Name: "Aiden", Gender: "Male", Classes: "Fighter", Range: "Melee,Ranged", HairColor: "White", ReleaseYear: "2022", WeaponCount: 1, ImageURL: "https://example.com/aiden.png"},
		{Name: "Alonso", Gender: "Male", Classes: "Tank", Range: "Melee", HairColor: "Blonde", ReleaseYear: "2023", WeaponCount: 1, ImageURL: "https://example.com/alonso.png"},
	}
	return t.RosterService.LoadCharacters(characters)
}
