package admin_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/Maycoooz/DD-bot/internal/apptest"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
)

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return apptest.Login(t, router, apptest.AdminUsername, apptest.AdminPassword)
}

func createChild(t *testing.T, router *gin.Engine, parentToken, username string) {
	t.Helper()

	w := apptest.Do(t, router, http.MethodPost, "/parent/create-child", map[string]any{
		"username":         username,
		"password":         "kidpassword1",
		"confirm_password": "kidpassword1",
		"first_name":       "Kid",
		"last_name":        "Test",
		"country":          "SG",
		"gender":           "MALE",
		"birthday":         "2015-01-01",
		"race":             "OTHER",
		"interests":        []string{"SCIENCE", "ANIMALS", "SPORTS"},
	}, parentToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("create-child %q returned %d: %s", username, w.Code, w.Body.String())
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterParent(t, router, db, "alice")
	parentToken := apptest.Login(t, router, "alice", "password123")

	w := apptest.Do(t, router, http.MethodGet, "/admin/viewAllUsers", nil, parentToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("parent on admin route returned %d, want 403", w.Code)
	}

	w = apptest.Do(t, router, http.MethodGet, "/admin/viewAllUsers", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous on admin route returned %d, want 401", w.Code)
	}
}

func TestViewAllUsersCounts(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterParent(t, router, db, "bob")
	parentToken := apptest.Login(t, router, "bob", "password123")
	createChild(t, router, parentToken, "kid.bob")

	// Librarians and admins stay out of the user listing
	apptest.RegisterLibrarian(t, router, db, "libby")

	w := apptest.Do(t, router, http.MethodGet, "/admin/viewAllUsers", nil, adminToken(t, router))
	if w.Code != http.StatusOK {
		t.Fatalf("viewAllUsers returned %d: %s", w.Code, w.Body.String())
	}

	resp := apptest.Decode(t, w)

	if got := resp["total_parents"].(float64); got != 1 {
		t.Errorf("total_parents = %v, want 1", got)
	}
	if got := resp["total_kids"].(float64); got != 1 {
		t.Errorf("total_kids = %v, want 1", got)
	}
	if got := resp["total_users"].(float64); got != 2 {
		t.Errorf("total_users = %v, want 2", got)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterParent(t, router, db, "carol")
	parentToken := apptest.Login(t, router, "carol", "password123")
	createChild(t, router, parentToken, "kid.carol")

	if w := apptest.Do(t, router, http.MethodPost, "/reviews/app", map[string]any{
		"review": "nice",
		"stars":  4,
	}, parentToken); w.Code != http.StatusCreated {
		t.Fatalf("review returned %d: %s", w.Code, w.Body.String())
	}

	var parent model.User

	if err := db.First(&parent, "username = ?", "carol").Error; err != nil {
		t.Fatalf("parent not found: %v", err)
	}

	w := apptest.Do(t, router, http.MethodDelete, "/admin/delete-user/"+itoa(parent.ID), nil, adminToken(t, router))
	if w.Code != http.StatusOK {
		t.Fatalf("delete-user returned %d: %s", w.Code, w.Body.String())
	}

	var count int64

	db.Model(&model.User{}).Where("username IN ?", []string{"carol", "kid.carol"}).Count(&count)
	if count != 0 {
		t.Error("parent or child rows survived the delete")
	}

	db.Model(&model.Review{}).Where("user_id = ?", parent.ID).Count(&count)
	if count != 0 {
		t.Error("reviews survived the delete")
	}

	// Deleted accounts lose access immediately
	w = apptest.Do(t, router, http.MethodGet, "/users/me/", nil, parentToken)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("deleted account fetch returned %d, want 401", w.Code)
	}
}

func TestDeleteUserRejectsAdmins(t *testing.T) {
	router, db := apptest.NewRouter(t)

	var admin model.User

	if err := db.First(&admin, "username = ?", apptest.AdminUsername).Error; err != nil {
		t.Fatalf("admin not found: %v", err)
	}

	w := apptest.Do(t, router, http.MethodDelete, "/admin/delete-user/"+itoa(admin.ID), nil, adminToken(t, router))
	if w.Code != http.StatusForbidden {
		t.Fatalf("delete admin returned %d, want 403", w.Code)
	}

	w = apptest.Do(t, router, http.MethodDelete, "/admin/delete-user/999999", nil, adminToken(t, router))
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing user returned %d, want 404", w.Code)
	}
}

func TestApproveLibrarian(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterLibrarian(t, router, db, "dora")

	var librarian model.User

	if err := db.First(&librarian, "username = ?", "dora").Error; err != nil {
		t.Fatalf("librarian not found: %v", err)
	}
	if librarian.LibrarianVerified {
		t.Fatal("fresh librarian is already approved")
	}

	w := apptest.Do(t, router, http.MethodPatch, "/admin/approve-librarian/"+itoa(librarian.ID), nil, adminToken(t, router))
	if w.Code != http.StatusOK {
		t.Fatalf("approve-librarian returned %d: %s", w.Code, w.Body.String())
	}

	if err := db.First(&librarian, librarian.ID).Error; err != nil {
		t.Fatalf("librarian not found after approve: %v", err)
	}
	if !librarian.LibrarianVerified {
		t.Error("librarian still unapproved")
	}

	// Only librarian accounts can be approved
	apptest.RegisterParent(t, router, db, "erin")

	var parent model.User

	if err := db.First(&parent, "username = ?", "erin").Error; err != nil {
		t.Fatalf("parent not found: %v", err)
	}

	w = apptest.Do(t, router, http.MethodPatch, "/admin/approve-librarian/"+itoa(parent.ID), nil, adminToken(t, router))
	if w.Code != http.StatusNotFound {
		t.Fatalf("approve parent returned %d, want 404", w.Code)
	}
}

func TestDeleteLibrarianRemovesUploads(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterLibrarian(t, router, db, "frank")
	librarianToken := apptest.Login(t, router, "frank", "password123")

	if w := apptest.Do(t, router, http.MethodPost, "/librarian/add-book", map[string]any{
		"title":  "Frank's Book",
		"author": "Frank",
		"link":   "https://example.com/franks-book",
	}, librarianToken); w.Code != http.StatusCreated {
		t.Fatalf("add-book returned %d: %s", w.Code, w.Body.String())
	}
	if w := apptest.Do(t, router, http.MethodPost, "/librarian/add-video", map[string]any{
		"title":   "Frank's Video",
		"creator": "Frank",
		"link":    "https://example.com/franks-video",
	}, librarianToken); w.Code != http.StatusCreated {
		t.Fatalf("add-video returned %d: %s", w.Code, w.Body.String())
	}

	var librarian model.User

	if err := db.First(&librarian, "username = ?", "frank").Error; err != nil {
		t.Fatalf("librarian not found: %v", err)
	}

	w := apptest.Do(t, router, http.MethodDelete, "/admin/delete-librarian/"+itoa(librarian.ID), nil, adminToken(t, router))
	if w.Code != http.StatusOK {
		t.Fatalf("delete-librarian returned %d: %s", w.Code, w.Body.String())
	}

	var count int64

	db.Model(&model.Book{}).Where("source = ?", "frank").Count(&count)
	if count != 0 {
		t.Error("books survived the librarian delete")
	}

	db.Model(&model.Video{}).Where("source = ?", "frank").Count(&count)
	if count != 0 {
		t.Error("videos survived the librarian delete")
	}

	db.Model(&model.User{}).Where("id = ?", librarian.ID).Count(&count)
	if count != 0 {
		t.Error("librarian row survived the delete")
	}
}

func TestLibrarianMediaListing(t *testing.T) {
	router, db := apptest.NewRouter(t)

	apptest.RegisterLibrarian(t, router, db, "gina")
	librarianToken := apptest.Login(t, router, "gina", "password123")

	if w := apptest.Do(t, router, http.MethodPost, "/librarian/add-book", map[string]any{
		"title":  "Gina's Book",
		"author": "Gina",
		"link":   "https://example.com/ginas-book",
	}, librarianToken); w.Code != http.StatusCreated {
		t.Fatalf("add-book returned %d: %s", w.Code, w.Body.String())
	}

	var librarian model.User

	if err := db.First(&librarian, "username = ?", "gina").Error; err != nil {
		t.Fatalf("librarian not found: %v", err)
	}

	w := apptest.Do(t, router, http.MethodGet, "/admin/librarian/"+itoa(librarian.ID)+"/books", nil, adminToken(t, router))
	if w.Code != http.StatusOK {
		t.Fatalf("librarian books returned %d: %s", w.Code, w.Body.String())
	}

	var books []model.Book

	if err := json.Unmarshal(w.Body.Bytes(), &books); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Gina's Book" {
		t.Errorf("books = %v, want Gina's Book only", books)
	}

	w = apptest.Do(t, router, http.MethodGet, "/admin/librarian/"+itoa(librarian.ID)+"/videos", nil, adminToken(t, router))
	if w.Code != http.StatusOK {
		t.Fatalf("librarian videos returned %d: %s", w.Code, w.Body.String())
	}
}

func TestLandingPageContent(t *testing.T) {
	router, _ := apptest.NewRouter(t)

	token := adminToken(t, router)

	w := apptest.Do(t, router, http.MethodGet, "/admin/landing-page-content", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("landing-page-content returned %d: %s", w.Code, w.Body.String())
	}

	var rows []model.LandingPage

	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("no seeded landing page rows")
	}

	target := rows[0]

	w = apptest.Do(t, router, http.MethodPut, "/admin/landing-page-content/"+itoa(target.ID), map[string]any{
		"display_text": "Welcome to the new landing page",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update landing content returned %d: %s", w.Code, w.Body.String())
	}

	w = apptest.Do(t, router, http.MethodPut, "/admin/landing-page-content/"+itoa(target.ID), map[string]any{
		"display_text": "   ",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank display text returned %d, want 400", w.Code)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
