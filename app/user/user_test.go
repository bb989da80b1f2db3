package user_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/Maycoooz/DD-bot/internal/apptest"
	"github.com/Maycoooz/DD-bot/internal/model"
)

func TestFetchProfile(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterParent(t, router, db, "alice")
	token := apptest.Login(t, router, "alice", "password123")

	w := apptest.Do(t, router, http.MethodGet, "/users/me/", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch returned %d: %s", w.Code, w.Body.String())
	}

	resp := apptest.Decode(t, w)

	if resp["username"] != "alice" {
		t.Errorf("username = %v, want alice", resp["username"])
	}
	if resp["role"] != model.RoleParent {
		t.Errorf("role = %v, want %q", resp["role"], model.RoleParent)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Error("profile response leaks the password hash")
	}
}

func TestFetchProfileRequiresToken(t *testing.T) {
	router, _ := apptest.NewRouter(t)

	w := apptest.Do(t, router, http.MethodGet, "/users/me/", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("fetch without token returned %d, want 401", w.Code)
	}

	w = apptest.Do(t, router, http.MethodGet, "/users/me/", nil, "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("fetch with bad token returned %d, want 401", w.Code)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterParent(t, router, db, "bob")
	token := apptest.Login(t, router, "bob", "password123")

	w := apptest.Do(t, router, http.MethodPatch, "/users/me/", map[string]any{
		"first_name": "Robert",
		"country":    "MY",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}

	var user model.User

	if err := db.First(&user, "username = ?", "bob").Error; err != nil {
		t.Fatalf("user not found: %v", err)
	}

	if user.FirstName != "Robert" {
		t.Errorf("first_name = %q, want Robert", user.FirstName)
	}
	if user.Country != "MY" {
		t.Errorf("country = %q, want MY", user.Country)
	}
	// Untouched fields keep their values
	if user.LastName != "Parent" {
		t.Errorf("last_name = %q, want Parent", user.LastName)
	}
}

func TestChangeOwnPassword(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterParent(t, router, db, "carol")
	token := apptest.Login(t, router, "carol", "password123")

	var user model.User

	if err := db.First(&user, "username = ?", "carol").Error; err != nil {
		t.Fatalf("user not found: %v", err)
	}

	w := apptest.Do(t, router, http.MethodPatch, "/users/change-password/"+itoa(user.ID), map[string]any{
		"current_password": "wrong-password",
		"new_password":     "newpassword123",
	}, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("change with wrong current password returned %d, want 401", w.Code)
	}

	w = apptest.Do(t, router, http.MethodPatch, "/users/change-password/"+itoa(user.ID), map[string]any{
		"current_password": "password123",
		"new_password":     "newpassword123",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("change password returned %d: %s", w.Code, w.Body.String())
	}

	apptest.Login(t, router, "carol", "newpassword123")
}

func TestParentChangesChildPassword(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterParent(t, router, db, "dana")
	token := apptest.Login(t, router, "dana", "password123")

	w := apptest.Do(t, router, http.MethodPost, "/parent/create-child", map[string]any{
		"username":         "kid.dana",
		"password":         "kidpassword1",
		"confirm_password": "kidpassword1",
		"first_name":       "Kid",
		"last_name":        "Dana",
		"country":          "SG",
		"gender":           "MALE",
		"birthday":         "2015-03-14",
		"race":             "OTHER",
		"interests":        []string{"SCIENCE", "ANIMALS", "SPORTS"},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create-child returned %d: %s", w.Code, w.Body.String())
	}

	var child model.User

	if err := db.First(&child, "username = ?", "kid.dana").Error; err != nil {
		t.Fatalf("child not found: %v", err)
	}

	// Parents reset child passwords without knowing the current one
	w = apptest.Do(t, router, http.MethodPatch, "/users/change-password/"+itoa(child.ID), map[string]any{
		"new_password": "newkidpassword1",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("child password change returned %d: %s", w.Code, w.Body.String())
	}

	apptest.Login(t, router, "kid.dana", "newkidpassword1")

	// A stranger can not touch the child's password
	apptest.RegisterParent(t, router, db, "mallory")
	strangerToken := apptest.Login(t, router, "mallory", "password123")

	w = apptest.Do(t, router, http.MethodPatch, "/users/change-password/"+itoa(child.ID), map[string]any{
		"new_password": "hijacked12345",
	}, strangerToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("stranger password change returned %d, want 403", w.Code)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
