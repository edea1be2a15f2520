package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rebirth/internal/model"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "data", "rebirth.db")

	store, err := Open(s.path)
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func newIdentity(key model.UserKey, race string) *model.Identity {
	return &model.Identity{
		UserKey:      key,
		Race:         race,
		Job:          "Mage",
		Gender:       "Female",
		BodyType:     "Slender",
		HairColor:    "Silver",
		EyeColor:     "Green",
		SpecialSkill: "Appraisal",
		Attributes:   model.Attributes{Strength: 5, Agility: 7, Intelligence: 8, Charisma: 2},
		Luck:         42,
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestCreateAndGetIdentity() {
	want := newIdentity("user-1", "Elf")
	s.Require().NoError(s.storage.CreateIdentity(s.ctx, want))

	got, err := s.storage.GetIdentity(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(want.UserKey, got.UserKey)
	s.Equal(want.Race, got.Race)
	s.Equal(want.Job, got.Job)
	s.Equal(want.Gender, got.Gender)
	s.Equal(want.BodyType, got.BodyType)
	s.Equal(want.HairColor, got.HairColor)
	s.Equal(want.EyeColor, got.EyeColor)
	s.Equal(want.SpecialSkill, got.SpecialSkill)
	s.Equal(want.Attributes, got.Attributes)
	s.Equal(want.Luck, got.Luck)
	s.True(want.CreatedAt.Equal(got.CreatedAt))
}

func (s *StorageSuite) TestGetIdentityNotFound() {
	_, err := s.storage.GetIdentity(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

func (s *StorageSuite) TestCreateIdentityConflictKeepsFirst() {
	s.Require().NoError(s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf")))

	err := s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Orc"))
	s.ErrorIs(err, model.ErrIdentityConflict)

	got, err := s.storage.GetIdentity(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("Elf", got.Race)
}

func (s *StorageSuite) TestClearIdentities() {
	_ = s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf"))
	_ = s.storage.CreateIdentity(s.ctx, newIdentity("user-2", "Orc"))

	n, err := s.storage.ClearIdentities(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	_, err = s.storage.GetIdentity(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrIdentityNotFound)

	n, err = s.storage.ClearIdentities(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, n)
}

func (s *StorageSuite) TestIdentitySurvivesReopen() {
	s.Require().NoError(s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf")))
	s.Require().NoError(s.storage.Close())

	reopened, err := Open(s.path)
	s.Require().NoError(err)
	s.storage = reopened

	got, err := s.storage.GetIdentity(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("Elf", got.Race)
}

func (s *StorageSuite) TestMigrationsRecordedOnce() {
	s.Require().NoError(s.storage.Close())
	reopened, err := Open(s.path)
	s.Require().NoError(err)
	s.storage = reopened

	var count int
	err = s.storage.sqlDB.QueryRow("SELECT COUNT(*) FROM " + migrationTable).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *StorageSuite) TestConcurrentCreateOnlyOneWins() {
	var wins, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf"))
			switch {
			case err == nil:
				wins.Add(1)
			case err == model.ErrIdentityConflict:
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
	s.Equal(int32(7), conflicts.Load())
}

func (s *StorageSuite) TestOpenRequiresPath() {
	_, err := Open("  ")
	s.ErrorIs(err, model.ErrStorageUnavailable)
}

func (s *StorageSuite) TestExtractUp() {
	sql := "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;"
	s.Equal("\nCREATE TABLE a (id INTEGER);\n", extractUp(sql))
	s.Equal("SELECT 1;", extractUp("SELECT 1;"))
}
