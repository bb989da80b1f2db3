package parent_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/Maycoooz/DD-bot/internal/apptest"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func childBody(username string, interests []string) map[string]any {
	return map[string]any{
		"username":         username,
		"password":         "kidpassword1",
		"confirm_password": "kidpassword1",
		"first_name":       "Kid",
		"last_name":        "Test",
		"country":          "SG",
		"gender":           "FEMALE",
		"birthday":         "2014-07-01",
		"race":             "OTHER",
		"interests":        interests,
	}
}

func newParent(t *testing.T, router *gin.Engine, db *gorm.DB, username string) string {
	t.Helper()

	apptest.RegisterParent(t, router, db, username)
	return apptest.Login(t, router, username, "password123")
}

func TestCreateChild(t *testing.T) {
	router, db := apptest.NewRouter(t)

	token := newParent(t, router, db, "alice")

	w := apptest.Do(t, router, http.MethodPost, "/parent/create-child",
		childBody("kid.alice", []string{"SCIENCE", "ANIMALS", "FANTASY"}), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create-child returned %d: %s", w.Code, w.Body.String())
	}

	var parent, child model.User

	if err := db.First(&parent, "username = ?", "alice").Error; err != nil {
		t.Fatalf("parent not found: %v", err)
	}
	if err := db.Preload("Interests").Preload("Role").First(&child, "username = ?", "kid.alice").Error; err != nil {
		t.Fatalf("child not found: %v", err)
	}

	if child.Role.Name != model.RoleChild {
		t.Errorf("role = %q, want %q", child.Role.Name, model.RoleChild)
	}
	if child.PrimaryParentID == nil || *child.PrimaryParentID != parent.ID {
		t.Error("child is not linked to the creating parent")
	}
	if !child.IsVerified {
		t.Error("children need no email verification but the account is unverified")
	}
	if child.Email != nil {
		t.Errorf("child email = %v, want none", *child.Email)
	}
	if len(child.Interests) != 3 {
		t.Errorf("child has %d interests, want 3", len(child.Interests))
	}
}

func TestCreateChildValidation(t *testing.T) {
	router, db := apptest.NewRouter(t)

	token := newParent(t, router, db, "bob")

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"too few interests", func(b map[string]any) { b["interests"] = []string{"SCIENCE", "ANIMALS"} }},
		{"unknown interest", func(b map[string]any) { b["interests"] = []string{"SCIENCE", "ANIMALS", "QUANTUM"} }},
		{"password mismatch", func(b map[string]any) { b["confirm_password"] = "different1234" }},
		{"short password", func(b map[string]any) { b["password"] = "short"; b["confirm_password"] = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := childBody("kid.invalid", []string{"SCIENCE", "ANIMALS", "FANTASY"})
			tt.mutate(body)

			w := apptest.Do(t, router, http.MethodPost, "/parent/create-child", body, token)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("create-child returned %d, want 400: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateChildUsernameConflict(t *testing.T) {
	router, db := apptest.NewRouter(t)

	token := newParent(t, router, db, "carol")

	body := childBody("kid.carol", []string{"SCIENCE", "ANIMALS", "FANTASY"})

	if w := apptest.Do(t, router, http.MethodPost, "/parent/create-child", body, token); w.Code != http.StatusCreated {
		t.Fatalf("create-child returned %d: %s", w.Code, w.Body.String())
	}

	w := apptest.Do(t, router, http.MethodPost, "/parent/create-child", body, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate child username returned %d, want 409", w.Code)
	}
}

func TestMyChildren(t *testing.T) {
	router, db := apptest.NewRouter(t)

	token := newParent(t, router, db, "dana")

	for _, name := range []string{"kid.one", "kid.two"} {
		w := apptest.Do(t, router, http.MethodPost, "/parent/create-child",
			childBody(name, []string{"SCIENCE", "ANIMALS", "FANTASY"}), token)
		if w.Code != http.StatusCreated {
			t.Fatalf("create-child %q returned %d: %s", name, w.Code, w.Body.String())
		}
	}

	// Another parent's children stay invisible
	otherToken := newParent(t, router, db, "erin")

	w := apptest.Do(t, router, http.MethodGet, "/parent/my-children", nil, otherToken)
	if w.Code != http.StatusOK {
		t.Fatalf("my-children returned %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != "[]" && body != "null" {
		t.Fatalf("new parent sees children: %s", body)
	}

	w = apptest.Do(t, router, http.MethodGet, "/parent/my-children", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("my-children returned %d: %s", w.Code, w.Body.String())
	}

	var children []map[string]any

	decodeList(t, w.Body.Bytes(), &children)

	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
}

func TestUpdateChild(t *testing.T) {
	router, db := apptest.NewRouter(t)

	token := newParent(t, router, db, "frank")

	if w := apptest.Do(t, router, http.MethodPost, "/parent/create-child",
		childBody("kid.frank", []string{"SCIENCE", "ANIMALS", "FANTASY"}), token); w.Code != http.StatusCreated {
		t.Fatalf("create-child returned %d: %s", w.Code, w.Body.String())
	}

	var child model.User

	if err := db.First(&child, "username = ?", "kid.frank").Error; err != nil {
		t.Fatalf("child not found: %v", err)
	}

	w := apptest.Do(t, router, http.MethodPatch, "/parent/update-child/"+itoa(child.ID), map[string]any{
		"first_name": "Franklin",
		"interests":  []string{"HISTORY", "COOKING", "ART", "COMIC"},
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update-child returned %d: %s", w.Code, w.Body.String())
	}

	if err := db.Preload("Interests").First(&child, child.ID).Error; err != nil {
		t.Fatalf("child not found after update: %v", err)
	}

	if child.FirstName != "Franklin" {
		t.Errorf("first_name = %q, want Franklin", child.FirstName)
	}
	if len(child.Interests) != 4 {
		t.Errorf("child has %d interests after replace, want 4", len(child.Interests))
	}
}

func TestChildOwnership(t *testing.T) {
	router, db := apptest.NewRouter(t)

	ownerToken := newParent(t, router, db, "grace")

	if w := apptest.Do(t, router, http.MethodPost, "/parent/create-child",
		childBody("kid.grace", []string{"SCIENCE", "ANIMALS", "FANTASY"}), ownerToken); w.Code != http.StatusCreated {
		t.Fatalf("create-child returned %d: %s", w.Code, w.Body.String())
	}

	var child model.User

	if err := db.First(&child, "username = ?", "kid.grace").Error; err != nil {
		t.Fatalf("child not found: %v", err)
	}

	strangerToken := newParent(t, router, db, "heidi")

	w := apptest.Do(t, router, http.MethodPatch, "/parent/update-child/"+itoa(child.ID), map[string]any{
		"first_name": "Hijacked",
	}, strangerToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign update-child returned %d, want 403", w.Code)
	}

	w = apptest.Do(t, router, http.MethodDelete, "/parent/delete-child/"+itoa(child.ID), nil, strangerToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete-child returned %d, want 403", w.Code)
	}

	w = apptest.Do(t, router, http.MethodPatch, "/parent/update-child/999999", map[string]any{
		"first_name": "Nobody",
	}, ownerToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing child returned %d, want 404", w.Code)
	}
}

func TestDeleteChild(t *testing.T) {
	router, db := apptest.NewRouter(t)

	token := newParent(t, router, db, "ivan")

	if w := apptest.Do(t, router, http.MethodPost, "/parent/create-child",
		childBody("kid.ivan", []string{"SCIENCE", "ANIMALS", "FANTASY"}), token); w.Code != http.StatusCreated {
		t.Fatalf("create-child returned %d: %s", w.Code, w.Body.String())
	}

	var child model.User

	if err := db.First(&child, "username = ?", "kid.ivan").Error; err != nil {
		t.Fatalf("child not found: %v", err)
	}

	// Give the child a review so the cascade has something to clean
	childToken := apptest.Login(t, router, "kid.ivan", "kidpassword1")

	if w := apptest.Do(t, router, http.MethodPost, "/reviews/app", map[string]any{
		"review": "fun!",
		"stars":  5,
	}, childToken); w.Code != http.StatusCreated {
		t.Fatalf("review returned %d: %s", w.Code, w.Body.String())
	}

	w := apptest.Do(t, router, http.MethodDelete, "/parent/delete-child/"+itoa(child.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete-child returned %d: %s", w.Code, w.Body.String())
	}

	var count int64

	db.Model(&model.User{}).Where("id = ?", child.ID).Count(&count)
	if count != 0 {
		t.Error("child row still present after delete")
	}

	db.Model(&model.Review{}).Where("user_id = ?", child.ID).Count(&count)
	if count != 0 {
		t.Error("child reviews still present after delete")
	}
}

func TestInterestsVocabulary(t *testing.T) {
	router, db := apptest.NewRouter(t)

	token := newParent(t, router, db, "judy")

	w := apptest.Do(t, router, http.MethodGet, "/parent/interests", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("interests returned %d: %s", w.Code, w.Body.String())
	}

	var interests []map[string]any

	decodeList(t, w.Body.Bytes(), &interests)

	if len(interests) != len(model.DefaultInterests) {
		t.Fatalf("got %d interests, want %d", len(interests), len(model.DefaultInterests))
	}
}

func TestParentRoutesRejectOtherRoles(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterLibrarian(t, router, db, "libby")
	token := apptest.Login(t, router, "libby", "password123")

	w := apptest.Do(t, router, http.MethodGet, "/parent/my-children", nil, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("librarian on parent route returned %d, want 403", w.Code)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeList(t *testing.T, data []byte, out any) {
	t.Helper()

	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("failed to decode response %q: %v", data, err)
	}
}
