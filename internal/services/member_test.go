package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/pkg/response"
)

func TestMemberService_CreateAppliesDefaults(t *testing.T) {
	svc := NewMemberService(openTestDB(t))

	id, err := svc.Create(&MemberRequest{Name: "Ana"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	member, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if member.Type != models.MemberTypeCurrent {
		t.Errorf("Type = %q, expected %q", member.Type, models.MemberTypeCurrent)
	}
	if member.SupervisionType != models.SupervisionAdvisor {
		t.Errorf("SupervisionType = %q, expected %q", member.SupervisionType, models.SupervisionAdvisor)
	}
}

func TestMemberService_GetByIDNotFound(t *testing.T) {
	svc := NewMemberService(openTestDB(t))

	_, err := svc.GetByID(42)
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("GetByID() error = %v, expected 404 AppError", err)
	}
}

func TestMemberService_ListOrdering(t *testing.T) {
	svc := NewMemberService(openTestDB(t))

	for _, req := range []MemberRequest{
		{Name: "Co", OrderIndex: 0, SupervisionType: models.SupervisionCoAdvisor},
		{Name: "Second", OrderIndex: 2},
		{Name: "First", OrderIndex: 1},
		{Name: "Alumnus", OrderIndex: 0, Type: models.MemberTypeAlumni},
	} {
		req := req
		if _, err := svc.Create(&req); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := svc.List(&MemberListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	assertNames(t, all, "Co", "Alumnus", "First", "Second")

	current, err := svc.List(&MemberListRequest{Type: models.MemberTypeCurrent})
	if err != nil {
		t.Fatalf("List(current) error = %v", err)
	}
	assertNames(t, current, "First", "Second", "Co")
}

func TestMemberService_UpdateOverwritesAllFields(t *testing.T) {
	svc := NewMemberService(openTestDB(t))

	id, err := svc.Create(&MemberRequest{
		Name:   "Ana",
		RolePT: "Doutoranda",
		Email:  strPtr("ana@example.com"),
		Orcid:  strPtr("0000-0001"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	changes, err := svc.Update(id, &MemberRequest{Name: "Ana Souza", Type: models.MemberTypeAlumni})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if changes != 1 {
		t.Errorf("changes = %d, expected 1", changes)
	}

	member, _ := svc.GetByID(id)
	if member.Name != "Ana Souza" {
		t.Errorf("Name = %q", member.Name)
	}
	if member.RolePT != "" {
		t.Errorf("RolePT = %q, expected cleared", member.RolePT)
	}
	if member.Email != nil || member.Orcid != nil {
		t.Errorf("optional fields should be NULL after overwrite, got email=%v orcid=%v", member.Email, member.Orcid)
	}
	if member.ID != id {
		t.Errorf("ID changed to %d", member.ID)
	}
}

func TestMemberService_UpdateAndDeleteMissing(t *testing.T) {
	svc := NewMemberService(openTestDB(t))

	changes, err := svc.Update(999, &MemberRequest{Name: "Ghost"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if changes != 0 {
		t.Errorf("Update changes = %d, expected 0", changes)
	}

	changes, err = svc.Delete(999)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if changes != 0 {
		t.Errorf("Delete changes = %d, expected 0", changes)
	}
}

func TestMemberService_Delete(t *testing.T) {
	svc := NewMemberService(openTestDB(t))

	id, _ := svc.Create(&MemberRequest{Name: "Temp"})
	changes, err := svc.Delete(id)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if changes != 1 {
		t.Errorf("changes = %d, expected 1", changes)
	}
	if _, err := svc.GetByID(id); err == nil {
		t.Error("member should be gone")
	}
}

func assertNames(t *testing.T, members []models.Member, expected ...string) {
	t.Helper()
	if len(members) != len(expected) {
		t.Fatalf("got %d members, expected %d", len(members), len(expected))
	}
	for i, name := range expected {
		if members[i].Name != name {
			t.Errorf("members[%d] = %q, expected %q", i, members[i].Name, name)
		}
	}
}
