package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"artjury/contexts/identity-access/panel-service/adapters/crypto"
	"artjury/contexts/identity-access/panel-service/adapters/memory"
	"artjury/contexts/identity-access/panel-service/application/commands"
	"artjury/contexts/identity-access/panel-service/application/queries"
	domainerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/internal/shared/access"
	"artjury/internal/shared/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

type sequenceIDs struct {
	next int
}

func (g *sequenceIDs) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("member-%02d", g.next), nil
}

type panelFixture struct {
	store  *memory.Store
	clock  *fixedClock
	judges commands.JudgeUseCase
	admins commands.AdminUseCase
	login  commands.LoginUseCase
	query  queries.JudgeQueryService
}

func newPanelFixture() panelFixture {
	store := memory.NewStore()
	clock := &fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	ids := &sequenceIDs{}
	hasher := crypto.BcryptHasher{Cost: bcrypt.MinCost}
	return panelFixture{
		store:  store,
		clock:  clock,
		judges: commands.JudgeUseCase{Repository: store, Hasher: hasher, Clock: clock, IDGen: ids},
		admins: commands.AdminUseCase{Repository: store, Hasher: hasher, Clock: clock, IDGen: ids},
		login:  commands.LoginUseCase{Repository: store, Hasher: hasher, Clock: clock},
		query:  queries.JudgeQueryService{Repository: store},
	}
}

var admin = access.Admin("admin-1")

func TestCreateJudgeNormalizesUsernameAndCategories(t *testing.T) {
	f := newPanelFixture()
	judge, err := f.judges.CreateJudge(context.Background(), admin, commands.CreateJudgeCommand{
		Username:   "  Alice ",
		Name:       "Alice Moreau",
		Password:   "secret-pass",
		Categories: []string{"Photography", "Digital Painting", "Photography"},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", judge.Username)
	assert.Equal(t, []access.Category{access.CategoryPhotography, access.CategoryDigitalPainting}, judge.Categories)
	assert.NotEqual(t, "secret-pass", judge.PasswordHash)

	_, err = f.judges.CreateJudge(context.Background(), admin, commands.CreateJudgeCommand{
		Username:   "ALICE",
		Name:       "Other",
		Password:   "secret-pass",
		Categories: []string{"Paintings"},
	})
	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestCreateJudgeRejectsInvalidInput(t *testing.T) {
	f := newPanelFixture()
	cases := []struct {
		name  string
		cmd   commands.CreateJudgeCommand
		field string
	}{
		{"missing username", commands.CreateJudgeCommand{Name: "N", Password: "secret1", Categories: []string{"Paintings"}}, "username"},
		{"short password", commands.CreateJudgeCommand{Username: "u", Name: "N", Password: "123", Categories: []string{"Paintings"}}, "password"},
		{"no categories", commands.CreateJudgeCommand{Username: "u", Name: "N", Password: "secret1"}, "categories"},
		{"unknown category", commands.CreateJudgeCommand{Username: "u", Name: "N", Password: "secret1", Categories: []string{"Sculpture"}}, "categories"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.judges.CreateJudge(context.Background(), admin, tc.cmd)
			require.ErrorIs(t, err, validation.ErrInvalid)
			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestJudgeManagementRequiresAdmin(t *testing.T) {
	f := newPanelFixture()
	judgeActor := access.Judge("judge-1", access.CategoryPaintings)

	_, err := f.judges.CreateJudge(context.Background(), judgeActor, commands.CreateJudgeCommand{})
	assert.ErrorIs(t, err, access.ErrForbidden)
	_, err = f.judges.CreateJudge(context.Background(), access.Anonymous(), commands.CreateJudgeCommand{})
	assert.ErrorIs(t, err, access.ErrUnauthenticated)
	_, err = f.query.ListJudges(context.Background(), judgeActor)
	assert.ErrorIs(t, err, access.ErrForbidden)
	assert.ErrorIs(t, f.judges.DeleteJudge(context.Background(), judgeActor, "member-01"), access.ErrForbidden)
}

func TestUpdateJudgeKeepsPasswordWhenBlank(t *testing.T) {
	f := newPanelFixture()
	ctx := context.Background()
	created, err := f.judges.CreateJudge(ctx, admin, commands.CreateJudgeCommand{
		Username: "bob", Name: "Bob", Password: "first-pass", Categories: []string{"Drawing"},
	})
	require.NoError(t, err)

	updated, err := f.judges.UpdateJudge(ctx, admin, commands.UpdateJudgeCommand{
		JudgeID: created.JudgeID, Username: "robert", Name: "Robert", Categories: []string{"Paintings", "Drawing"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
	assert.Equal(t, "robert", updated.Username)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	_, err = f.login.Authenticate(ctx, "bob", "first-pass")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	principal, err := f.login.Authenticate(ctx, "Robert", "first-pass")
	require.NoError(t, err)
	assert.Equal(t, []access.Category{access.CategoryPaintings, access.CategoryDrawing}, principal.Actor.Categories)

	_, err = f.judges.UpdateJudge(ctx, admin, commands.UpdateJudgeCommand{
		JudgeID: created.JudgeID, Username: "robert", Name: "Robert", Password: "second-pass", Categories: []string{"Drawing"},
	})
	require.NoError(t, err)
	_, err = f.login.Authenticate(ctx, "robert", "first-pass")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	_, err = f.login.Authenticate(ctx, "robert", "second-pass")
	assert.NoError(t, err)
}

func TestUpdateJudgeUsernameConflict(t *testing.T) {
	f := newPanelFixture()
	ctx := context.Background()
	_, err := f.judges.CreateJudge(ctx, admin, commands.CreateJudgeCommand{
		Username: "carol", Name: "Carol", Password: "secret1", Categories: []string{"Drawing"},
	})
	require.NoError(t, err)
	dave, err := f.judges.CreateJudge(ctx, admin, commands.CreateJudgeCommand{
		Username: "dave", Name: "Dave", Password: "secret1", Categories: []string{"Drawing"},
	})
	require.NoError(t, err)

	_, err = f.judges.UpdateJudge(ctx, admin, commands.UpdateJudgeCommand{
		JudgeID: dave.JudgeID, Username: "CAROL", Name: "Dave", Categories: []string{"Drawing"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	_, err = f.judges.UpdateJudge(ctx, admin, commands.UpdateJudgeCommand{
		JudgeID: "missing", Username: "x", Name: "X", Categories: []string{"Drawing"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrJudgeNotFound)
}

func TestUsernamesAreSharedAcrossAdminsAndJudges(t *testing.T) {
	f := newPanelFixture()
	ctx := context.Background()
	_, err := f.admins.CreateAdmin(ctx, commands.CreateAdminCommand{Username: "chair", Name: "Chair", Password: "chair-pass"})
	require.NoError(t, err)

	_, err = f.judges.CreateJudge(ctx, admin, commands.CreateJudgeCommand{
		Username: "Chair", Name: "Judge Chair", Password: "secret1", Categories: []string{"Paintings"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	_, err = f.judges.CreateJudge(ctx, admin, commands.CreateJudgeCommand{
		Username: "eve", Name: "Eve", Password: "secret1", Categories: []string{"Paintings"},
	})
	require.NoError(t, err)
	_, err = f.admins.CreateAdmin(ctx, commands.CreateAdminCommand{Username: "EVE", Name: "Eve Admin", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	f := newPanelFixture()
	ctx := context.Background()
	createdAdmin, err := f.admins.CreateAdmin(ctx, commands.CreateAdminCommand{Username: "admin", Name: "Admin", Password: "admin-pass"})
	require.NoError(t, err)
	judge, err := f.judges.CreateJudge(ctx, admin, commands.CreateJudgeCommand{
		Username: "judge1", Name: "Judge One", Password: "judge-pass", Categories: []string{"Photography"},
	})
	require.NoError(t, err)

	principal, err := f.login.Authenticate(ctx, "ADMIN", "admin-pass")
	require.NoError(t, err)
	assert.True(t, principal.Actor.IsAdmin())
	assert.Equal(t, createdAdmin.AdminID, principal.Actor.ID)

	principal, err = f.login.Authenticate(ctx, "judge1", "judge-pass")
	require.NoError(t, err)
	assert.True(t, principal.Actor.IsJudge())
	assert.Equal(t, judge.JudgeID, principal.Actor.ID)
	assert.Equal(t, "Judge One", principal.Name)

	stored, err := f.store.GetJudge(ctx, judge.JudgeID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)

	for _, attempt := range []struct{ username, password string }{
		{"judge1", "wrong-pass"},
		{"nobody", "judge-pass"},
		{"", "judge-pass"},
		{"judge1", ""},
	} {
		_, err := f.login.Authenticate(ctx, attempt.username, attempt.password)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, attempt.username)
	}
}

func TestDeleteJudgeAndListing(t *testing.T) {
	f := newPanelFixture()
	ctx := context.Background()
	for _, username := range []string{"zoe", "adam", "mia"} {
		_, err := f.judges.CreateJudge(ctx, admin, commands.CreateJudgeCommand{
			Username: username, Name: username, Password: "secret1", Categories: []string{"Paintings"},
		})
		require.NoError(t, err)
	}
	judges, err := f.query.ListJudges(ctx, admin)
	require.NoError(t, err)
	require.Len(t, judges, 3)
	assert.Equal(t, []string{"adam", "mia", "zoe"}, []string{judges[0].Username, judges[1].Username, judges[2].Username})

	names, err := f.query.JudgeNames(ctx, []string{judges[0].JudgeID, "unknown"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{judges[0].JudgeID: "adam"}, names)

	require.NoError(t, f.judges.DeleteJudge(ctx, admin, judges[0].JudgeID))
	assert.ErrorIs(t, f.judges.DeleteJudge(ctx, admin, judges[0].JudgeID), domainerrors.ErrJudgeNotFound)
	_, err = f.login.Authenticate(ctx, "adam", "secret1")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
