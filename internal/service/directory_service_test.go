package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/constituent-office/internal/domain"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

func newDirectoryFixture() (*DirectoryService, *memActorRepo) {
	actors := newMemActorRepo()
	return NewDirectoryService(actors, bcrypt.MinCost), actors
}

func TestCreateStaffAndList(t *testing.T) {
	svc, _ := newDirectoryFixture()
	sup := supervisor("sup-1")

	member, err := svc.CreateStaff(context.Background(), sup, StaffInput{
		FullName:    "Desk One",
		PhoneNumber: "01200000001",
		Password:    "staffpass",
		Scope:       []domain.Category{domain.CategoryHealthcare, domain.CategoryEducation},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, member.Role)
	assert.True(t, member.Active)

	listed, err := svc.ListStaff(context.Background(), sup)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, member.ID, listed[0].ID)
}

func TestDirectoryIsSupervisorOnly(t *testing.T) {
	svc, _ := newDirectoryFixture()
	member := staff("s-1", "Desk", domain.CategoryLegal)

	_, err := svc.ListStaff(context.Background(), member)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))

	_, err = svc.CreateStaff(context.Background(), member, StaffInput{
		FullName: "X", PhoneNumber: "0120", Password: "p", Scope: []domain.Category{domain.CategoryLegal},
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))

	err = svc.Deactivate(context.Background(), member, "s-2")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestCreateStaffScopeValidation(t *testing.T) {
	svc, _ := newDirectoryFixture()
	sup := supervisor("sup-1")

	_, err := svc.CreateStaff(context.Background(), sup, StaffInput{
		FullName: "Desk", PhoneNumber: "0120", Password: "p", Scope: nil,
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

	_, err = svc.CreateStaff(context.Background(), sup, StaffInput{
		FullName: "Desk", PhoneNumber: "0120", Password: "p",
		Scope: []domain.Category{domain.Category("gossip")},
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

	// The ALL sentinel is a legal scope grant.
	member, err := svc.CreateStaff(context.Background(), sup, StaffInput{
		FullName: "Desk", PhoneNumber: "01200000009", Password: "p",
		Scope: []domain.Category{domain.CategoryAll},
	})
	require.NoError(t, err)
	assert.True(t, member.HasFullScope())
}

func TestRescopeStaff(t *testing.T) {
	svc, _ := newDirectoryFixture()
	sup := supervisor("sup-1")
	member, err := svc.CreateStaff(context.Background(), sup, StaffInput{
		FullName: "Desk", PhoneNumber: "01200000001", Password: "p",
		Scope: []domain.Category{domain.CategoryLegal},
	})
	require.NoError(t, err)

	updated, err := svc.Rescope(context.Background(), sup, member.ID, []domain.Category{domain.CategorySecurity})
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{domain.CategorySecurity}, updated.CategoryScope)

	_, err = svc.Rescope(context.Background(), sup, "missing", []domain.Category{domain.CategoryLegal})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestDeactivateStaffIsSoftAndIdempotent(t *testing.T) {
	svc, actors := newDirectoryFixture()
	sup := supervisor("sup-1")
	member, err := svc.CreateStaff(context.Background(), sup, StaffInput{
		FullName: "Desk", PhoneNumber: "01200000001", Password: "p",
		Scope: []domain.Category{domain.CategoryLegal},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), sup, member.ID))
	require.NoError(t, svc.Deactivate(context.Background(), sup, member.ID))

	stored, err := actors.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestDeactivateIgnoresNonStaffAccounts(t *testing.T) {
	svc, actors := newDirectoryFixture()
	resident := citizen("", "Mona")
	require.NoError(t, actors.Create(context.Background(), resident))

	err := svc.Deactivate(context.Background(), supervisor("sup-1"), resident.ID)

	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}
