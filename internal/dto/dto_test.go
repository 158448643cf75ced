package dto

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ptr[T any](v T) *T { return &v }

func firstMessage(err error) string {
	switch e := err.(type) {
	case validation.Errors:
		for _, v := range e {
			return firstMessage(v)
		}
	case validation.Error:
		return e.Message()
	}
	return err.Error()
}

func TestCreateDepartmentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"ok", "HR", ""},
		{"trimmed ok", "  HR  ", ""},
		{"empty", "", MsgDepartmentNameRequired},
		{"blank", "   ", MsgDepartmentNameRequired},
		{"too long", strings.Repeat("a", 101), MsgNameTooLong},
		{"multibyte at limit", strings.Repeat("ç", 100), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateDepartmentRequest{Name: tt.input}
			req.Normalize()
			err := req.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %q, got nil", tt.wantMsg)
			}
			if got := firstMessage(err); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestUpdateDepartmentRequest_RequiresNewName(t *testing.T) {
	req := UpdateDepartmentRequest{Name: " "}
	req.Normalize()
	err := req.Validate()
	if err == nil || firstMessage(err) != MsgDepartmentNewNameNeeded {
		t.Fatalf("expected %q, got %v", MsgDepartmentNewNameNeeded, err)
	}
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateEmployeeRequest
		wantMsg string
	}{
		{"ok", CreateEmployeeRequest{Name: "John Doe", DepartmentID: ptr(uint(1))}, ""},
		{"ok with dependents", CreateEmployeeRequest{Name: "John Doe", DepartmentID: ptr(uint(1)), Dependents: []string{"Jane", "Jim"}}, ""},
		{"missing name", CreateEmployeeRequest{DepartmentID: ptr(uint(1))}, MsgEmployeeFieldsRequired},
		{"missing department", CreateEmployeeRequest{Name: "John Doe"}, MsgEmployeeFieldsRequired},
		{"zero department", CreateEmployeeRequest{Name: "John Doe", DepartmentID: ptr(uint(0))}, MsgEmployeeFieldsRequired},
		{"blank dependent", CreateEmployeeRequest{Name: "John Doe", DepartmentID: ptr(uint(1)), Dependents: []string{"Jane", "  "}}, MsgDependentInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Normalize()
			err := req.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %q, got nil", tt.wantMsg)
			}
			if got := firstMessage(err); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestUpdateEmployeeRequest_NoFields(t *testing.T) {
	req := UpdateEmployeeRequest{Name: ptr("   ")}
	req.Normalize()

	if req.HasChanges() {
		t.Fatal("blank name should not count as a change")
	}
	err := req.Validate()
	if err == nil || firstMessage(err) != MsgNoUpdateFields {
		t.Fatalf("expected %q, got %v", MsgNoUpdateFields, err)
	}
}

func TestUpdateEmployeeRequest_EmptyDependentsIsAChange(t *testing.T) {
	req := UpdateEmployeeRequest{Dependents: &[]string{}}
	req.Normalize()

	if !req.HasChanges() {
		t.Fatal("empty dependents list should count as a change")
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateEmployeeRequest_TrimsName(t *testing.T) {
	req := UpdateEmployeeRequest{Name: ptr("  Maria  ")}
	req.Normalize()

	if req.Name == nil || *req.Name != "Maria" {
		t.Fatalf("name = %v, want Maria", req.Name)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
