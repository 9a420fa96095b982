package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Profile{}, &Destination{}, &RefreshToken{}))
	return db
}

func profileCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&Profile{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func TestUserCreateProvisionsProfile(t *testing.T) {
	db := testDB(t)

	u := User{Username: "alice", Email: "alice@example.com", HashedPassword: []byte("x")}
	require.NoError(t, db.Create(&u).Error)

	var p Profile
	require.NoError(t, db.Where("user_id = ?", u.ID).First(&p).Error)
	require.Equal(t, "alice", p.Username)
	require.Equal(t, "alice@example.com", p.Email)
	require.EqualValues(t, 1, profileCount(t, db, u.ID))
}

func TestUserSaveSyncsProfile(t *testing.T) {
	db := testDB(t)

	u := User{Username: "alice", Email: "old@example.com", HashedPassword: []byte("x")}
	require.NoError(t, db.Create(&u).Error)

	u.Email = "new@example.com"
	require.NoError(t, db.Save(&u).Error)

	var p Profile
	require.NoError(t, db.Where("user_id = ?", u.ID).First(&p).Error)
	require.Equal(t, "new@example.com", p.Email)
	require.Equal(t, "alice", p.Username)

	u.Username = "alice2"
	require.NoError(t, db.Save(&u).Error)
	require.NoError(t, db.Where("user_id = ?", u.ID).First(&p).Error)
	require.Equal(t, "alice2", p.Username)
	require.EqualValues(t, 1, profileCount(t, db, u.ID))
}

func TestEnsureProfileIdempotent(t *testing.T) {
	db := testDB(t)

	u := User{Username: "bob", HashedPassword: []byte("x")}
	require.NoError(t, db.Create(&u).Error)

	p1, err := EnsureProfile(db, &u)
	require.NoError(t, err)
	p2, err := EnsureProfile(db, &u)
	require.NoError(t, err)
	require.Equal(t, p1.ID, p2.ID)
	require.EqualValues(t, 1, profileCount(t, db, u.ID))
}

func TestEnsureProfileReturnsExistingRow(t *testing.T) {
	db := testDB(t)

	u := User{Username: "carol", HashedPassword: []byte("x")}
	require.NoError(t, db.Create(&u).Error)

	// the unique index refuses a second row for the same user
	dup := Profile{UserID: u.ID}
	require.Error(t, db.Create(&dup).Error)

	p, err := EnsureProfile(db, &u)
	require.NoError(t, err)
	require.Equal(t, "carol", p.Username)
	require.EqualValues(t, 1, profileCount(t, db, u.ID))
}

func TestEnsureProfileLosesCreateRace(t *testing.T) {
	db := testDB(t)

	u := User{Username: "dana", HashedPassword: []byte("x")}
	require.NoError(t, db.Create(&u).Error)
	// drop the hook-created row so the initial lookup misses
	require.NoError(t, db.Where("user_id = ?", u.ID).Delete(&Profile{}).Error)

	// a concurrent request wins the insert between our lookup and our create:
	// interleave it right before the profile insert executes
	raced := false
	err := db.Callback().Create().Before("gorm:create").Register("profile_race_winner", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*Profile); !ok || raced {
			return
		}
		raced = true
		require.NoError(t, db.Create(&Profile{UserID: u.ID, Username: "winner"}).Error)
	})
	require.NoError(t, err)
	defer db.Callback().Create().Remove("profile_race_winner")

	p, err := EnsureProfile(db, &u)
	require.NoError(t, err)
	require.True(t, raced)
	require.Equal(t, "winner", p.Username) // the winner's row, not a duplicate
	require.EqualValues(t, 1, profileCount(t, db, u.ID))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("")
	require.NoError(t, err)
	require.Equal(t, StatusWishlist, s)

	for _, valid := range []string{"Wishlist", "Visited", "Vacation"} {
		s, err := ParseStatus(valid)
		require.NoError(t, err)
		require.EqualValues(t, valid, s)
	}

	_, err = ParseStatus("wishlist")
	require.Error(t, err)
	_, err = ParseStatus("Bucket")
	require.Error(t, err)
}
